package pong

import "github.com/vovakirdan/tinyarcade/internal/core"

// Controller drives a paddle toward the ball.
type Controller interface {
	Drive(ballY float64)
}

// KeyAgent simulates a player holding the up or down key.
type KeyAgent struct {
	player   *Player
	deadzone float64
}

// NewKeyAgent binds a key-holding agent to p.
func NewKeyAgent(p *Player, deadzone float64) *KeyAgent {
	return &KeyAgent{player: p, deadzone: deadzone}
}

// Drive holds exactly one direction toward the ball. Inside a non-zero
// deadzone both keys are released; on an exact match nothing changes.
func (a *KeyAgent) Drive(ballY float64) {
	held := &a.player.Held
	d := a.player.Pos - ballY
	switch {
	case d > a.deadzone:
		held.Add(core.ActionMoveUp)
		held.Remove(core.ActionMoveDown)
	case d < -a.deadzone:
		held.Add(core.ActionMoveDown)
		held.Remove(core.ActionMoveUp)
	case a.deadzone > 0:
		held.Remove(core.ActionMoveUp)
		held.Remove(core.ActionMoveDown)
	}
}

// DirectAgent moves its paddle one step per decision.
type DirectAgent struct {
	player   *Player
	deadzone float64
}

// NewDirectAgent binds a direct-move agent to p.
func NewDirectAgent(p *Player, deadzone float64) *DirectAgent {
	return &DirectAgent{player: p, deadzone: deadzone}
}

// Drive moves the paddle toward the ball.
func (a *DirectAgent) Drive(ballY float64) {
	d := a.player.Pos - ballY
	switch {
	case d > a.deadzone:
		a.player.Move(Up)
	case d < -a.deadzone:
		a.player.Move(Down)
	}
}
