package platformer

import (
	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

// Player is the controllable body. X and Y are its center in world units.
type Player struct {
	X, Y       float64
	VelX, VelY float64
	Actions    core.ActionSet
	Grounded   bool // Feet touched a platform during the last tick

	cfg config.PlatformerPlayer
}

// NewPlayer places a player at (x, y) at rest.
func NewPlayer(cfg config.PlatformerPlayer, x, y float64) *Player {
	return &Player{X: x, Y: y, cfg: cfg}
}

// Hitbox returns the full body box.
func (p *Player) Hitbox() core.Box {
	return core.CenteredBox(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// Tick advances the player one logic step against the given platforms.
func (p *Player) Tick(platforms []core.Box) {
	c := p.cfg
	newX, newY := p.X, p.Y
	velX, velY := p.VelX, p.VelY

	velY = min(velY+c.Gravity, c.TerminalVelocity)
	velX = core.Approach(velX, c.Friction)

	if p.Actions.Has(core.ActionMoveLeft) {
		velX = -c.Speed
	}
	if p.Actions.Has(core.ActionMoveRight) {
		velX = c.Speed
	}

	newX += velX
	newY += velY

	// Head and feet hitboxes use the pre-move x.
	head := core.NewBox(p.X-c.Width/2, newY-c.Height/2-1, c.Width, 1)
	feet := core.NewBox(p.X-c.Width/2, newY+c.Height/2, c.Width, 1)

	grounded := false
	for _, plat := range platforms {
		if core.Overlaps(plat, head) {
			newY = plat.Bottom() + c.Height/2
			velY = 0
		}

		if core.Overlaps(plat, feet) {
			if velY > 0 {
				velY = 0
			}
			if newY+c.Height > plat.Y {
				newY = plat.Y - c.Height/2 - 1
			}
			grounded = true
		}

		body := core.NewBox(newX-c.Width/2, newY-c.Height/2, c.Width, c.Height-c.BodyInset)
		if core.Overlaps(plat, body) {
			newX = p.X
			velX = 0
		}
	}

	if p.Actions.Has(core.ActionJump) {
		if grounded {
			velY = -c.Jump
			newY += velY
		}
		p.Actions.Remove(core.ActionJump)
	}

	p.X, p.Y = newX, newY
	p.VelX, p.VelY = velX, velY
	p.Grounded = grounded
}

// Render draws the player body.
func (p *Player) Render(r core.Renderer) {
	b := p.Hitbox()
	r.SetColor(core.ColorRed)
	r.DrawRect(b.X, b.Y, b.W, b.H)
}
