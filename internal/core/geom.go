// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a position or velocity in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box represents an axis-aligned hitbox used for collision detection.
// X and Y are the top-left corner in world units (y grows downward).
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a new hitbox with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// CenteredBox creates a hitbox of size w×h centered on (cx, cy).
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports whether a and b overlap.
// Comparisons are strict, so boxes that only touch at an edge do not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Overlaps is the method form of Overlaps.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b, other)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves val toward zero by step without crossing it.
func Approach(val, step float64) float64 {
	switch {
	case val > 0:
		return math.Max(0, val-step)
	case val < 0:
		return math.Min(0, val+step)
	default:
		return 0
	}
}
