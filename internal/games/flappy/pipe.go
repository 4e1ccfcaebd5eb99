package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Pipe is a pair of columns with a gap between them. Pos is the horizontal
// center; the gap edges are in screen coordinates.
type Pipe struct {
	Pos       float64
	UpperEdge float64 // Bottom of the upper column
	LowerEdge float64 // Top of the lower column
	Cleared   bool    // Bird has passed; no more scoring or collision

	removed bool
}

// NewPipe creates a pipe at pos with its gap centered at height (screen coordinates).
func NewPipe(pos, height, gap float64) *Pipe {
	return &Pipe{
		Pos:       pos,
		UpperEdge: height - gap/2,
		LowerEdge: height + gap/2,
	}
}

// RandomPipe creates a pipe whose gap center is uniform in
// [margin, h-margin], rounded to a whole unit.
func RandomPipe(rng *rand.Rand, pos, h, margin, gap float64) *Pipe {
	height := math.Round((h-2*margin)*rng.Float64()) + margin
	return NewPipe(pos, height, gap)
}

// Removed reports whether the pipe has left the playfield for good.
func (p *Pipe) Removed() bool {
	return p.removed
}

// Step moves the pipe left and marks it removed once far enough off-screen.
// Stepping a removed pipe is a programming error.
func (p *Pipe) Step(speed, width, despawn float64) {
	if p.removed {
		panic("flappy: step on removed pipe")
	}
	p.Pos -= speed
	if p.Pos < -width*despawn {
		p.removed = true
	}
}

// InRange reports whether the pipe overlaps the bird's column.
func (p *Pipe) InRange(birdX, birdSize, width float64) bool {
	return p.Pos > birdX-width/2-birdSize && p.Pos < birdX+width/2+birdSize
}

// Check runs the gap-pass test. A cleared pipe never detects or hits.
func (p *Pipe) Check(bird *Bird, h, width float64) (detected, hit bool) {
	if p.Cleared {
		return false, false
	}
	if !p.InRange(bird.cfg.X, bird.cfg.Size, width) {
		return false, false
	}
	top, bottom := bird.Extent(h)
	return true, top <= p.UpperEdge || bottom >= p.LowerEdge
}

// TryClear marks the pipe cleared once it is behind the bird.
// It returns true exactly once per pipe.
func (p *Pipe) TryClear(birdX, birdSize, width float64) bool {
	if p.Cleared || p.Pos+width+birdSize > birdX {
		return false
	}
	p.Cleared = true
	return true
}

// Render draws both columns.
func (p *Pipe) Render(r core.Renderer, h, width float64) {
	left := p.Pos - width/2
	r.SetColor(core.ColorGreen)
	r.DrawRect(left, 0, width, p.UpperEdge)
	r.DrawRect(left, p.LowerEdge, width, h-p.LowerEdge)
}

// sweep drops removed pipes in place, keeping order.
func sweep(pipes []*Pipe) []*Pipe {
	kept := pipes[:0]
	for _, p := range pipes {
		if !p.removed {
			kept = append(kept, p)
		}
	}
	clear(pipes[len(kept):])
	return kept
}
