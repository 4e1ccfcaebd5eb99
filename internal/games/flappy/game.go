// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird airborne through gaps in scrolling pipes.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
)

// Lower bounds applied when difficulty scaling shrinks the playfield rhythm.
const (
	minInterval = 20 // Frames between spawns
	minGapBirds = 6  // Gap never shrinks below this many bird sizes
)

// Session holds the live entities and counters of one run.
type Session struct {
	Bird                *Bird
	Pipes               []*Pipe
	Score               int
	FramesSinceLastPipe int
	Frames              int
	Over                bool
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	diff    *config.DifficultyManager
	loop    core.Loop
	session *Session
	rng     *rand.Rand
	rep     core.Reporter
}

// New creates a Flappy Bird game with the built-in configuration.
func New() *Game {
	return NewWithConfig(config.DefaultFlappyConfig())
}

// NewWithConfig creates a Flappy Bird game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := &Game{rep: core.NopReporter{}}
	g.setConfig(cfg)
	return g
}

func (g *Game) setConfig(cfg config.FlappyConfig) {
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
}

// Configure loads the YAML config and applies a difficulty preset.
func (g *Game) Configure(opts registry.Options) error {
	cfg, err := config.LoadFlappy(opts.ConfigPath)
	if err != nil {
		return err
	}
	preset, ok := config.ParsePreset(opts.Difficulty)
	if !ok {
		return &config.PresetError{Name: opts.Difficulty}
	}
	config.ApplyFlappyPreset(&cfg, preset)
	g.setConfig(cfg)
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// World returns the playfield size.
func (g *Game) World() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Reset starts a new session. The loop is left stopped.
func (g *Game) Reset(rc core.RuntimeConfig, rep core.Reporter) {
	if rep == nil {
		rep = core.NopReporter{}
	}
	g.rep = rep
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.loop.Stop()
	g.session = &Session{
		Bird:  NewBird(g.cfg.Bird),
		Pipes: make([]*Pipe, 0, 8),
	}
	g.rep.ReportScore(0)
}

// Session exposes the live session state.
func (g *Game) Session() *Session {
	return g.session
}

// Loop returns the frame driver state machine.
func (g *Game) Loop() *core.Loop {
	return &g.loop
}

// Clocks returns nil: everything happens in the frame callback.
func (g *Game) Clocks() []core.Clock {
	return nil
}

// Tick is unused; Flappy has no extra clocks.
func (g *Game) Tick(core.ClockID) {}

// Press handles a pressed action. Only Jump matters.
func (g *Game) Press(a core.Action) {
	if a == core.ActionJump && g.session != nil && !g.session.Over {
		g.session.Bird.Jump()
	}
}

// Release is a no-op; the bird reacts to presses only.
func (g *Game) Release(core.Action) {}

// Frame advances the session by one frame and renders it.
func (g *Game) Frame(r core.Renderer) {
	s := g.session
	w, h := g.World()
	r.Clear()

	if s.Over {
		g.render(r)
		return
	}

	pc, bc := g.cfg.Pipes, g.cfg.Bird
	speed := g.diff.Speed(pc.Speed, s.Score, s.Frames)

	for _, p := range s.Pipes {
		p.Step(speed, pc.Width, pc.Despawn)
		if p.Removed() {
			continue
		}
		if p.TryClear(bc.X, bc.Size, pc.Width) {
			s.Score++
			g.rep.ReportScore(s.Score)
		}
		p.Render(r, h, pc.Width)
	}

	s.Bird.Step()
	s.Bird.Render(r, h)

	if g.collided() {
		s.Over = true
		g.loop.Stop()
		g.rep.ReportGameOver(s.Score)
	}

	interval := g.diff.Interval(pc.Interval, minInterval, s.Score, s.Frames)
	if s.FramesSinceLastPipe >= interval {
		gap := g.diff.Gap(pc.Gap, bc.Size*minGapBirds, s.Score, s.Frames)
		s.Pipes = append(s.Pipes, RandomPipe(g.rng, w+pc.Width, h, pc.Margin, gap))
		s.FramesSinceLastPipe = 0
	} else {
		s.FramesSinceLastPipe++
	}

	s.Pipes = sweep(s.Pipes)
	s.Frames++
}

// collided reports a pipe hit or a floor touch.
func (g *Game) collided() bool {
	s := g.session
	_, h := g.World()
	for _, p := range s.Pipes {
		if p.Removed() {
			continue
		}
		if _, hit := p.Check(s.Bird, h, g.cfg.Pipes.Width); hit {
			return true
		}
	}
	return s.Bird.OnFloor()
}

// render redraws the current state without advancing it.
func (g *Game) render(r core.Renderer) {
	_, h := g.World()
	for _, p := range g.session.Pipes {
		p.Render(r, h, g.cfg.Pipes.Width)
	}
	g.session.Bird.Render(r, h)
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
