package flappy

import (
	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Bird is the player entity. Pos is the height of its center above the floor.
type Bird struct {
	Pos   float64
	Speed float64 // Positive is upward

	cfg config.FlappyBird
}

// NewBird places a bird at its configured start height with no velocity.
func NewBird(cfg config.FlappyBird) *Bird {
	return &Bird{Pos: cfg.StartPos, cfg: cfg}
}

// Jump replaces the vertical speed with the jump speed.
func (b *Bird) Jump() {
	b.Speed = b.cfg.JumpSpeed
}

// Step applies gravity, integrates, then clamps to the floor.
func (b *Bird) Step() {
	b.Speed -= b.cfg.Gravity
	b.Pos += b.Speed
	if b.Pos <= b.floor() {
		b.Pos = b.floor()
	}
}

// OnFloor reports whether the bird rests on the floor.
func (b *Bird) OnFloor() bool {
	return b.Pos <= b.floor()
}

func (b *Bird) floor() float64 {
	return b.cfg.Size
}

// Extent returns the bird's top and bottom in screen coordinates
// (y grows downward) for a world of height h.
func (b *Bird) Extent(h float64) (top, bottom float64) {
	y := h - b.Pos
	return y - b.cfg.Size/2, y + b.cfg.Size/2
}

// Render draws the bird as a circle.
func (b *Bird) Render(r core.Renderer, h float64) {
	r.SetColor(core.ColorYellow)
	r.DrawCircle(b.cfg.X, h-b.Pos, b.cfg.Size)
}
