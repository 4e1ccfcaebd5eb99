// Package platformer implements a side-view platformer.
// Physics runs on its own fixed-rate clock; frames only draw.
package platformer

import (
	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
)

// LogicClock drives Player.Tick.
const LogicClock core.ClockID = "logic"

// Session holds the live entities of one run.
type Session struct {
	Player    *Player
	Platforms []core.Box
	Ticks     int
}

// Game implements the platformer.
type Game struct {
	cfg     config.PlatformerConfig
	level   Level
	loop    core.Loop
	session *Session
}

// New creates a platformer with the built-in configuration and level.
func New() *Game {
	return NewWithLevel(config.DefaultPlatformerConfig(), DefaultLevel())
}

// NewWithLevel creates a platformer with an explicit configuration and level.
func NewWithLevel(cfg config.PlatformerConfig, lvl Level) *Game {
	return &Game{cfg: cfg, level: lvl}
}

// Configure loads the YAML config and the level file.
func (g *Game) Configure(opts registry.Options) error {
	cfg, err := config.LoadPlatformer(opts.ConfigPath)
	if err != nil {
		return err
	}
	lvl, err := LoadLevel(opts.LevelPath)
	if err != nil {
		return err
	}
	g.cfg, g.level = cfg, lvl
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// World returns the playfield size.
func (g *Game) World() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Level returns the loaded level.
func (g *Game) Level() Level {
	return g.level
}

// Reset places the player at the level start. The loop is left stopped.
func (g *Game) Reset(_ core.RuntimeConfig, rep core.Reporter) {
	if rep != nil {
		rep.ReportScore(0)
	}
	g.loop.Stop()

	block := g.cfg.BlockSize
	plats := make([]core.Box, len(g.level.Platforms))
	for i, p := range g.level.Platforms {
		plats[i] = p.Hitbox(block)
	}
	g.session = &Session{
		Player:    NewPlayer(g.cfg.Player, g.level.Start[0]*block, g.level.Start[1]*block),
		Platforms: plats,
	}
}

// Session exposes the live session state.
func (g *Game) Session() *Session {
	return g.session
}

// Loop returns the driver state machine shared by both callbacks.
func (g *Game) Loop() *core.Loop {
	return &g.loop
}

// Clocks returns the fixed-rate logic clock.
func (g *Game) Clocks() []core.Clock {
	return []core.Clock{{ID: LogicClock, Interval: core.HzInterval(g.cfg.TickRate)}}
}

// Tick runs one physics step.
func (g *Game) Tick(id core.ClockID) {
	if id != LogicClock {
		return
	}
	g.session.Player.Tick(g.session.Platforms)
	g.session.Ticks++
}

// Press records a held action.
func (g *Game) Press(a core.Action) {
	switch a {
	case core.ActionJump, core.ActionMoveLeft, core.ActionMoveRight:
		g.session.Player.Actions.Add(a)
	}
}

// Release clears a held movement action. Jump is consumed by Tick instead.
func (g *Game) Release(a core.Action) {
	switch a {
	case core.ActionMoveLeft, core.ActionMoveRight:
		g.session.Player.Actions.Remove(a)
	}
}

// Frame draws the level with the camera centered on the world origin.
func (g *Game) Frame(r core.Renderer) {
	w, h := g.World()
	r.Clear()
	r.SetOrigin(w/2, h/2)

	r.SetColor(core.ColorWhite)
	for _, b := range g.session.Platforms {
		r.DrawRect(b.X, b.Y, b.W, b.H)
	}
	g.session.Player.Render(r)
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
