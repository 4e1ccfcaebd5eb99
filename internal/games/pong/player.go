package pong

import (
	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Side identifies a paddle.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Direction is a paddle movement.
type Direction int

const (
	Up Direction = iota
	Down
)

// Player is a paddle. Pos is its vertical center.
type Player struct {
	Side     Side
	Pos      float64
	Score    int
	LeftEdge float64
	Held     core.ActionSet // MoveUp / MoveDown currently held

	cfg    config.PongPaddles
	worldH float64
}

// NewPlayer centers a paddle on its side of a w×h field.
func NewPlayer(side Side, cfg config.PongPaddles, w, h float64) *Player {
	left := cfg.EdgeDistance
	if side == Right {
		left = w - cfg.EdgeDistance - cfg.Width
	}
	return &Player{Side: side, Pos: h / 2, LeftEdge: left, cfg: cfg, worldH: h}
}

// Step moves the paddle for each held direction.
func (p *Player) Step() {
	if p.Held.Has(core.ActionMoveUp) {
		p.Move(Up)
	}
	if p.Held.Has(core.ActionMoveDown) {
		p.Move(Down)
	}
}

// Move shifts the paddle by its speed, keeping it fully on the field.
func (p *Player) Move(d Direction) {
	switch d {
	case Up:
		p.Pos -= p.cfg.Speed
	case Down:
		p.Pos += p.cfg.Speed
	}
	p.Pos = core.ClampF(p.Pos, p.cfg.Height/2, p.worldH-p.cfg.Height/2)
}

// Face returns the x of the paddle surface that faces the field.
func (p *Player) Face() float64 {
	if p.Side == Left {
		return p.LeftEdge + p.cfg.Width
	}
	return p.LeftEdge
}

// Covers reports whether y lies strictly within the paddle's extent.
func (p *Player) Covers(y float64) bool {
	return y > p.Pos-p.cfg.Height/2 && y < p.Pos+p.cfg.Height/2
}

// Render draws the paddle.
func (p *Player) Render(r core.Renderer) {
	r.SetColor(core.ColorWhite)
	r.DrawRect(p.LeftEdge, p.Pos-p.cfg.Height/2, p.cfg.Width, p.cfg.Height)
}
