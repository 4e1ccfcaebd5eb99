// Package pong implements Pong with configurable human and agent paddles.
// Agents decide on their own slower clock or inline with every frame.
package pong

import (
	"time"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
)

// AgentClock drives agent decisions when the cadence is "clock".
const AgentClock core.ClockID = "agent"

// Session holds the live entities of one match.
type Session struct {
	Left, Right *Player
	Ball        *Ball
	Agents      []Controller
	Over        bool
	Winner      Side
}

// Player returns the paddle on side s.
func (s *Session) Player(side Side) *Player {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Game implements the Pong game logic.
type Game struct {
	cfg     config.PongConfig
	loop    core.Loop
	session *Session
	rep     core.Reporter
}

// New creates a Pong game with the built-in configuration.
func New() *Game {
	return NewWithConfig(config.DefaultPongConfig())
}

// NewWithConfig creates a Pong game with an explicit configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, rep: core.NopReporter{}}
}

// Configure loads the YAML config.
func (g *Game) Configure(opts registry.Options) error {
	cfg, err := config.LoadPong(opts.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// World returns the playfield size.
func (g *Game) World() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Reset starts a new match. The loop is left stopped.
func (g *Game) Reset(_ core.RuntimeConfig, rep core.Reporter) {
	if rep == nil {
		rep = core.NopReporter{}
	}
	g.rep = rep
	g.loop.Stop()

	w, h := g.World()
	s := &Session{
		Left:  NewPlayer(Left, g.cfg.Paddles, w, h),
		Right: NewPlayer(Right, g.cfg.Paddles, w, h),
		Ball:  NewBall(g.cfg.Ball, w, h),
	}
	for _, side := range []Side{Left, Right} {
		if g.controller(side) == config.ControllerAgent {
			s.Agents = append(s.Agents, g.newAgent(s.Player(side)))
		}
	}
	g.session = s
	g.report()
}

func (g *Game) controller(side Side) string {
	if side == Left {
		return g.cfg.Sides.Left
	}
	return g.cfg.Sides.Right
}

func (g *Game) newAgent(p *Player) Controller {
	if g.cfg.Agent.Drive == config.AgentDriveDirect {
		return NewDirectAgent(p, g.cfg.Agent.Deadzone)
	}
	return NewKeyAgent(p, g.cfg.Agent.Deadzone)
}

// Session exposes the live session state.
func (g *Game) Session() *Session {
	return g.session
}

// Loop returns the frame driver state machine.
func (g *Game) Loop() *core.Loop {
	return &g.loop
}

// Clocks returns the agent clock when agents decide on their own cadence.
func (g *Game) Clocks() []core.Clock {
	if g.cfg.Agent.Cadence != config.AgentCadenceClock || !g.hasAgent() {
		return nil
	}
	return []core.Clock{{
		ID:       AgentClock,
		Interval: time.Duration(g.cfg.Agent.ClockMS) * time.Millisecond,
	}}
}

func (g *Game) hasAgent() bool {
	return g.cfg.Sides.Left == config.ControllerAgent || g.cfg.Sides.Right == config.ControllerAgent
}

// Tick runs one agent decision round.
func (g *Game) Tick(id core.ClockID) {
	if id == AgentClock && !g.session.Over {
		g.driveAgents()
	}
}

func (g *Game) driveAgents() {
	y := g.session.Ball.Pos.Y
	for _, a := range g.session.Agents {
		a.Drive(y)
	}
}

// Press holds a paddle direction for every human side.
func (g *Game) Press(a core.Action) {
	if a != core.ActionMoveUp && a != core.ActionMoveDown {
		return
	}
	for _, p := range g.humans() {
		p.Held.Add(a)
	}
}

// Release lets go of a paddle direction for every human side.
func (g *Game) Release(a core.Action) {
	for _, p := range g.humans() {
		p.Held.Remove(a)
	}
}

func (g *Game) humans() []*Player {
	var out []*Player
	if g.cfg.Sides.Left == config.ControllerHuman {
		out = append(out, g.session.Left)
	}
	if g.cfg.Sides.Right == config.ControllerHuman {
		out = append(out, g.session.Right)
	}
	return out
}

// Frame advances the match by one frame and renders it.
func (g *Game) Frame(r core.Renderer) {
	s := g.session
	r.Clear()
	g.renderNet(r)

	if s.Over {
		s.Ball.Render(r)
		s.Left.Render(r)
		s.Right.Render(r)
		return
	}

	if side, scored := s.Ball.Step(s.Left, s.Right); scored {
		g.scorePoint(side)
	}
	s.Ball.Render(r)

	for _, p := range []*Player{s.Left, s.Right} {
		p.Step()
		p.Render(r)
	}

	if g.cfg.Agent.Cadence == config.AgentCadenceInline && !s.Over {
		g.driveAgents()
	}
}

// scorePoint credits side, serves the ball back the other way and ends the
// match when the win score is reached.
func (g *Game) scorePoint(side Side) {
	s := g.session
	s.Ball.Speed.X = -s.Ball.Speed.X
	s.Ball.Recenter()
	s.Player(side).Score++
	g.report()

	if g.cfg.WinScore > 0 && s.Player(side).Score >= g.cfg.WinScore {
		s.Over = true
		s.Winner = side
		g.loop.Stop()
		g.rep.ReportGameOver(g.primary().Score)
	}
}

// primary is the side whose score goes to the single-value reporter:
// the first human side, or the left paddle in agent-only matches.
func (g *Game) primary() *Player {
	if g.cfg.Sides.Left != config.ControllerHuman && g.cfg.Sides.Right == config.ControllerHuman {
		return g.session.Right
	}
	return g.session.Left
}

func (g *Game) report() {
	g.rep.ReportScore(g.primary().Score)
	if m, ok := g.rep.(core.MatchReporter); ok {
		m.ReportMatch(g.session.Left.Score, g.session.Right.Score)
	}
}

// renderNet draws a dashed center line.
func (g *Game) renderNet(r core.Renderer) {
	w, h := g.World()
	dash := g.cfg.Ball.Size
	r.SetColor(core.ColorGray)
	for y := 0.0; y < h; y += dash * 2 {
		r.DrawRect(w/2-dash/8, y, dash/4, dash)
	}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
