package pong

import (
	"testing"
	"time"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

type nopRenderer struct{}

func (nopRenderer) Clear()                      {}
func (nopRenderer) DrawRect(x, y, w, h float64) {}
func (nopRenderer) DrawCircle(x, y, r float64)  {}
func (nopRenderer) SetColor(core.Color)         {}
func (nopRenderer) SetOrigin(x, y float64)      {}

type matchRecorder struct {
	scores   []int
	matches  [][2]int
	gameOver []int
}

func (m *matchRecorder) ReportScore(v int)    { m.scores = append(m.scores, v) }
func (m *matchRecorder) ReportGameOver(v int) { m.gameOver = append(m.gameOver, v) }

func (m *matchRecorder) ReportMatch(left, right int) {
	m.matches = append(m.matches, [2]int{left, right})
}

func newMatch(cfg config.PongConfig) (*Game, *matchRecorder) {
	g := NewWithConfig(cfg)
	rec := &matchRecorder{}
	g.Reset(core.RuntimeConfig{}, rec)
	g.Loop().Start()
	return g, rec
}

func TestBallFirstStep(t *testing.T) {
	g, _ := newMatch(config.DefaultPongConfig())
	g.Frame(nopRenderer{})

	got := g.Session().Ball.Pos
	if got.X != 645 || got.Y != 365 {
		t.Errorf("ball at %+v after one frame, want (645, 365)", got)
	}
}

func TestBallWallReflectAndClamp(t *testing.T) {
	cfg := config.DefaultPongConfig()
	s := newMatchSession(cfg)
	b := s.Ball
	b.Pos = core.Vec2{X: 640, Y: 5}
	b.Speed = core.Vec2{X: 5, Y: -5}

	b.Step(s.Left, s.Right)
	if b.Speed.Y != 5 {
		t.Errorf("speed.y = %v, want reflected 5", b.Speed.Y)
	}
	if b.Pos.Y != 10 {
		t.Errorf("pos.y = %v, want clamped 10", b.Pos.Y)
	}

	b.Pos = core.Vec2{X: 640, Y: 708}
	b.Speed = core.Vec2{X: 5, Y: 7}
	b.Step(s.Left, s.Right)
	if b.Pos.Y != 710 {
		t.Errorf("pos.y = %v, want clamped 710", b.Pos.Y)
	}
}

func TestBallLeavesWallAfterClamp(t *testing.T) {
	tests := []struct {
		name  string
		pos   float64
		speed float64
		edge  float64
	}{
		{"bottom", 708, 7, 710},
		{"top", 12, -7, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMatchSession(config.DefaultPongConfig())
			b := s.Ball
			b.Pos = core.Vec2{X: 640, Y: tt.pos}
			b.Speed = core.Vec2{X: 0, Y: tt.speed}

			b.Step(s.Left, s.Right)
			if b.Pos.Y != tt.edge {
				t.Fatalf("pos.y = %v, want clamped %v", b.Pos.Y, tt.edge)
			}
			if b.Speed.Y != -tt.speed {
				t.Errorf("speed.y = %v after clamp, want %v", b.Speed.Y, -tt.speed)
			}

			b.Step(s.Left, s.Right)
			if b.Speed.Y != -tt.speed {
				t.Errorf("speed.y = %v on the next step, want %v", b.Speed.Y, -tt.speed)
			}
			if b.Pos.Y == tt.edge {
				t.Errorf("ball stayed on the %s wall at %v", tt.name, b.Pos.Y)
			}
			if tt.edge > 360 && b.Pos.Y > tt.edge || tt.edge < 360 && b.Pos.Y < tt.edge {
				t.Errorf("ball left the field: y=%v", b.Pos.Y)
			}
		})
	}
}

func TestBallNeverRidesWall(t *testing.T) {
	g, _ := newMatch(config.DefaultPongConfig())

	stuck := 0
	for i := 0; i < 600; i++ {
		g.Frame(nopRenderer{})
		y := g.Session().Ball.Pos.Y
		if y == 10 || y == 710 {
			stuck++
			if stuck > 1 {
				t.Fatalf("frame %d: ball on the wall for %d frames", i, stuck)
			}
		} else {
			stuck = 0
		}
	}
}

func TestBallAlwaysInBounds(t *testing.T) {
	g, _ := newMatch(config.DefaultPongConfig())
	g.Session().Ball.Speed = core.Vec2{X: 7, Y: 13}

	for i := 0; i < 2000; i++ {
		g.Frame(nopRenderer{})
		y := g.Session().Ball.Pos.Y
		if y < 10 || y > 710 {
			t.Fatalf("frame %d: ball y %v out of bounds", i, y)
		}
	}
}

func newMatchSession(cfg config.PongConfig) *Session {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{}, nil)
	return g.Session()
}

func TestPaddleReflects(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	b := s.Ball
	b.Pos = core.Vec2{X: 79, Y: 360}
	b.Speed = core.Vec2{X: -5, Y: 0}

	if _, scored := b.Step(s.Left, s.Right); scored {
		t.Fatal("unexpected score")
	}
	if b.Speed.X != 5 || !b.Scoring {
		t.Fatalf("speed.x=%v scoring=%v, want 5 and latched", b.Speed.X, b.Scoring)
	}

	b.Step(s.Left, s.Right)
	if b.Scoring {
		t.Error("latch should clear in the neutral zone")
	}
}

func TestLatchPreventsDoubleReflection(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	b := s.Ball
	b.Pos = core.Vec2{X: 71, Y: 360}
	b.Speed = core.Vec2{X: -2, Y: 0}

	for i := 0; i < 4; i++ {
		b.Step(s.Left, s.Right)
		if b.Speed.X != 2 {
			t.Fatalf("step %d: speed.x = %v, reflected more than once", i, b.Speed.X)
		}
	}
}

func TestLatchAfterMissingPaddle(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	s.Left.Pos = 100
	b := s.Ball
	b.Pos = core.Vec2{X: 75, Y: 360}
	b.Speed = core.Vec2{X: -5, Y: 0}

	b.Step(s.Left, s.Right)
	if b.Speed.X != -5 || !b.Scoring {
		t.Fatalf("missed ball: speed.x=%v scoring=%v", b.Speed.X, b.Scoring)
	}

	// The paddle arrives behind its face; the ball must not bounce back.
	s.Left.Pos = 360
	var scorer Side
	scored := false
	for i := 0; i < 20 && !scored; i++ {
		scorer, scored = b.Step(s.Left, s.Right)
		if b.Speed.X != -5 {
			t.Fatalf("step %d: latched ball reflected", i)
		}
	}
	if !scored || scorer != Right {
		t.Errorf("scored=%v scorer=%v, want right to score", scored, scorer)
	}
}

func TestScorePointIncrementsOneSide(t *testing.T) {
	g, rec := newMatch(config.DefaultPongConfig())
	s := g.Session()
	s.Ball.Pos = core.Vec2{X: 14, Y: 100}
	s.Ball.Speed = core.Vec2{X: -5, Y: 0}

	g.Frame(nopRenderer{})

	if s.Left.Score != 0 || s.Right.Score != 1 {
		t.Errorf("scores = %d:%d, want 0:1", s.Left.Score, s.Right.Score)
	}
	if s.Ball.Pos != (core.Vec2{X: 640, Y: 360}) {
		t.Errorf("ball at %+v, want center", s.Ball.Pos)
	}
	if s.Ball.Speed.X != 5 || s.Ball.Scoring {
		t.Errorf("speed.x=%v scoring=%v, want 5 and unlatched", s.Ball.Speed.X, s.Ball.Scoring)
	}
	last := rec.matches[len(rec.matches)-1]
	if last != [2]int{0, 1} {
		t.Errorf("last match report = %v, want [0 1]", last)
	}
	if !g.Loop().Running() {
		t.Error("endless match must keep running")
	}

	// The left side scores on the right wall
	s.Ball.Pos = core.Vec2{X: 1266, Y: 100}
	s.Ball.Speed = core.Vec2{X: 5, Y: 0}
	g.Frame(nopRenderer{})
	if s.Left.Score != 1 || s.Right.Score != 1 {
		t.Errorf("scores = %d:%d, want 1:1", s.Left.Score, s.Right.Score)
	}
}

func TestWinScoreEndsMatch(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.WinScore = 1
	g, rec := newMatch(cfg)
	s := g.Session()
	s.Ball.Pos = core.Vec2{X: 14, Y: 100}
	s.Ball.Speed = core.Vec2{X: -5, Y: 0}

	g.Frame(nopRenderer{})

	if !s.Over || s.Winner != Right {
		t.Fatalf("over=%v winner=%v, want right win", s.Over, s.Winner)
	}
	if g.Loop().Running() {
		t.Error("loop should stop at the win score")
	}
	if len(rec.gameOver) != 1 || rec.gameOver[0] != 0 {
		t.Errorf("game over reports = %v, want [0]", rec.gameOver)
	}

	before := s.Ball.Pos
	g.Frame(nopRenderer{})
	if s.Ball.Pos != before {
		t.Error("finished match must not advance")
	}
}

func TestPaddleClamp(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	p := s.Left

	for i := 0; i < 100; i++ {
		p.Move(Up)
		if p.Pos < 50 {
			t.Fatalf("paddle above the field: %v", p.Pos)
		}
	}
	if p.Pos != 50 {
		t.Errorf("pos = %v, want 50", p.Pos)
	}
	for i := 0; i < 100; i++ {
		p.Move(Down)
	}
	if p.Pos != 670 {
		t.Errorf("pos = %v, want 670", p.Pos)
	}
}

func TestPaddleGeometry(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())

	if s.Left.LeftEdge != 50 || s.Left.Face() != 70 {
		t.Errorf("left paddle edge=%v face=%v", s.Left.LeftEdge, s.Left.Face())
	}
	if s.Right.LeftEdge != 1210 || s.Right.Face() != 1210 {
		t.Errorf("right paddle edge=%v face=%v", s.Right.LeftEdge, s.Right.Face())
	}
	if s.Left.Covers(310) || !s.Left.Covers(311) {
		t.Error("paddle extent must be strict")
	}
}

func TestKeyAgent(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	p := s.Right
	a := NewKeyAgent(p, 0)

	a.Drive(100)
	if !p.Held.Has(core.ActionMoveUp) || p.Held.Has(core.ActionMoveDown) {
		t.Errorf("ball above: held = %b, want only up", p.Held)
	}

	a.Drive(500)
	if p.Held.Has(core.ActionMoveUp) || !p.Held.Has(core.ActionMoveDown) {
		t.Errorf("ball below: held = %b, want only down", p.Held)
	}

	a.Drive(p.Pos)
	if !p.Held.Has(core.ActionMoveDown) {
		t.Error("exact match must leave keys unchanged")
	}

	NewKeyAgent(p, 20).Drive(p.Pos + 10)
	if !p.Held.Empty() {
		t.Error("inside the deadzone both keys are released")
	}
}

func TestDirectAgent(t *testing.T) {
	s := newMatchSession(config.DefaultPongConfig())
	a := NewDirectAgent(s.Right, 0)

	a.Drive(100)
	if s.Right.Pos != 350 {
		t.Errorf("pos = %v, want 350", s.Right.Pos)
	}
	a.Drive(s.Right.Pos)
	if s.Right.Pos != 350 {
		t.Error("no move on exact match")
	}
}

func TestAgentClock(t *testing.T) {
	g, _ := newMatch(config.DefaultPongConfig())

	clocks := g.Clocks()
	if len(clocks) != 1 || clocks[0].ID != AgentClock || clocks[0].Interval != 100*time.Millisecond {
		t.Fatalf("clocks = %+v, want one 100ms agent clock", clocks)
	}

	s := g.Session()
	s.Ball.Pos.Y = 100
	g.Tick(AgentClock)
	if !s.Right.Held.Has(core.ActionMoveUp) {
		t.Fatal("agent tick should hold up")
	}

	s.Ball.Speed = core.Vec2{}
	g.Frame(nopRenderer{})
	if s.Right.Pos != 350 {
		t.Errorf("agent paddle at %v, want 350", s.Right.Pos)
	}
	if s.Left.Pos != 360 {
		t.Error("human paddle moved without input")
	}
}

func TestInlineCadence(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Agent.Cadence = config.AgentCadenceInline
	g, _ := newMatch(cfg)

	if g.Clocks() != nil {
		t.Fatal("inline cadence needs no clock")
	}

	s := g.Session()
	s.Ball.Pos.Y = 100
	s.Ball.Speed = core.Vec2{}
	g.Frame(nopRenderer{}) // decides after stepping
	g.Frame(nopRenderer{}) // moves
	if s.Right.Pos != 350 {
		t.Errorf("agent paddle at %v, want 350", s.Right.Pos)
	}
}

func TestHumanInput(t *testing.T) {
	g, _ := newMatch(config.DefaultPongConfig())
	s := g.Session()
	s.Ball.Speed = core.Vec2{}

	g.Press(core.ActionMoveUp)
	g.Press(core.ActionJump)
	g.Frame(nopRenderer{})
	if s.Left.Pos != 350 {
		t.Errorf("left paddle at %v, want 350", s.Left.Pos)
	}
	if !s.Right.Held.Empty() {
		t.Error("human input must not reach the agent paddle")
	}

	g.Release(core.ActionMoveUp)
	g.Frame(nopRenderer{})
	if s.Left.Pos != 350 {
		t.Error("released paddle must stop")
	}
}

func TestAgentOnlyMatch(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Sides.Left = config.ControllerAgent
	g, _ := newMatch(cfg)

	if n := len(g.Session().Agents); n != 2 {
		t.Fatalf("agents = %d, want 2", n)
	}
	g.Press(core.ActionMoveUp)
	if !g.Session().Left.Held.Empty() {
		t.Error("agent paddles ignore key input")
	}

	for i := 0; i < 600; i++ {
		if i%6 == 0 {
			g.Tick(AgentClock)
		}
		g.Frame(nopRenderer{})
	}
}

func TestNoAgentsNoClock(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Sides.Right = config.ControllerHuman
	g, _ := newMatch(cfg)

	if g.Clocks() != nil {
		t.Error("two humans need no agent clock")
	}
	if len(g.Session().Agents) != 0 {
		t.Error("no agents expected")
	}
}
