package pong

import (
	"math"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Ball is the puck. Pos is its center.
type Ball struct {
	Pos   core.Vec2
	Speed core.Vec2
	// Scoring latches once the ball is past a paddle face. While set, no
	// paddle can reflect the ball; it clears in the neutral zone or on re-center.
	Scoring bool

	cfg  config.PongBall
	w, h float64
}

// NewBall serves a ball from the center of a w×h field.
func NewBall(cfg config.PongBall, w, h float64) *Ball {
	b := &Ball{
		Speed: core.Vec2{X: cfg.SpeedX, Y: cfg.SpeedY},
		cfg:   cfg,
		w:     w,
		h:     h,
	}
	b.Recenter()
	return b
}

// Recenter puts the ball back in the middle and clears the latch.
func (b *Ball) Recenter() {
	b.Pos = core.Vec2{X: b.w / 2, Y: b.h / 2}
	b.Scoring = false
}

// Step bounces off walls and paddles, integrates, and reports which side
// scored, if any.
func (b *Ball) Step(left, right *Player) (Side, bool) {
	half := b.cfg.Size / 2

	if (b.Pos.Y-half <= 0 && b.Speed.Y < 0) || (b.Pos.Y+half >= b.h && b.Speed.Y > 0) {
		b.Speed.Y = -b.Speed.Y
	}

	inLeft := b.Pos.X-half < left.Face()
	inRight := b.Pos.X+half > right.Face()
	switch {
	case b.Scoring:
		if !inLeft && !inRight {
			b.Scoring = false
		}
	case inLeft:
		b.Scoring = true
		if left.Covers(b.Pos.Y) {
			b.Speed.X = -b.Speed.X
		}
	case inRight:
		b.Scoring = true
		if right.Covers(b.Pos.Y) {
			b.Speed.X = -b.Speed.X
		}
	}

	b.Pos = b.Pos.Add(b.Speed)
	// Clamping onto a wall edge also reflects.
	switch {
	case b.Pos.Y < half:
		b.Pos.Y = half
		b.Speed.Y = math.Abs(b.Speed.Y)
	case b.Pos.Y > b.h-half:
		b.Pos.Y = b.h - half
		b.Speed.Y = -math.Abs(b.Speed.Y)
	}

	switch {
	case b.Pos.X-half <= 0:
		return Right, true
	case b.Pos.X+half >= b.w:
		return Left, true
	}
	return Left, false
}

// Render draws the ball centered on its position.
func (b *Ball) Render(r core.Renderer) {
	r.SetColor(core.ColorBrightYellow)
	r.DrawCircle(b.Pos.X, b.Pos.Y, b.cfg.Size/2)
}
