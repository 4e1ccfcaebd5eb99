package flappy

import (
	"testing"

	"github.com/vovakirdan/tinyarcade/internal/config"
	"github.com/vovakirdan/tinyarcade/internal/core"
)

// nopRenderer discards all drawing.
type nopRenderer struct{ clears int }

func (r *nopRenderer) Clear()                          { r.clears++ }
func (r *nopRenderer) DrawRect(x, y, w, h float64)     {}
func (r *nopRenderer) DrawCircle(x, y, radius float64) {}
func (r *nopRenderer) SetColor(core.Color)             {}
func (r *nopRenderer) SetOrigin(x, y float64)          {}

// recorder captures reporter callbacks.
type recorder struct {
	scores   []int
	gameOver []int
}

func (r *recorder) ReportScore(v int)    { r.scores = append(r.scores, v) }
func (r *recorder) ReportGameOver(v int) { r.gameOver = append(r.gameOver, v) }

func newTestGame(seed int64) (*Game, *recorder) {
	g := New()
	rec := &recorder{}
	g.Reset(core.RuntimeConfig{Seed: seed}, rec)
	g.Loop().Start()
	return g, rec
}

func TestBirdFirstStep(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig().Bird)
	b.Step()

	if b.Speed != -1 || b.Pos != 599 {
		t.Errorf("after one step got speed=%v pos=%v, want -1 and 599", b.Speed, b.Pos)
	}
}

func TestBirdClampsToFloor(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Bird
	b := NewBird(cfg)

	for i := 0; i < 600; i++ {
		b.Step()
		if b.Pos < cfg.Size {
			t.Fatalf("step %d: pos %v below floor %v", i, b.Pos, cfg.Size)
		}
	}
	if b.Pos != cfg.Size {
		t.Fatalf("after 600 steps pos = %v, want %v", b.Pos, cfg.Size)
	}

	for i := 0; i < 10; i++ {
		b.Step()
	}
	if b.Pos != cfg.Size {
		t.Errorf("pos left the floor without a jump: %v", b.Pos)
	}
}

func TestBirdIdempotentAtFloor(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Bird
	b := NewBird(cfg)
	b.Pos, b.Speed = cfg.Size, 0

	b.Step()
	if b.Pos != cfg.Size {
		t.Errorf("pos = %v, want %v", b.Pos, cfg.Size)
	}
	if !b.OnFloor() {
		t.Error("bird should report being on the floor")
	}
}

func TestBirdJump(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig().Bird)
	b.Speed = -8
	b.Jump()
	b.Step()

	if b.Speed != 14 || b.Pos != 614 {
		t.Errorf("got speed=%v pos=%v, want 14 and 614", b.Speed, b.Pos)
	}
}

func TestPipeGapEdges(t *testing.T) {
	p := NewPipe(100, 300, 250)
	if p.UpperEdge != 175 || p.LowerEdge != 425 {
		t.Errorf("edges = (%v, %v), want (175, 425)", p.UpperEdge, p.LowerEdge)
	}
}

func TestPipeCheck(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	const h = 720
	b := NewBird(cfg.Bird) // screen y = 120, extent [115, 125]

	tests := []struct {
		name         string
		pos          float64
		height       float64
		wantDetected bool
		wantHit      bool
	}{
		{"far right", 600, 120, false, false},
		{"in gap", 250, 120, true, false},
		{"upper column", 250, 400, true, true},
		{"lower column", 250, 0, true, true},
		{"touching upper edge", 250, 115 + 125, true, true},
		{"range boundary excluded", 250 + 20 + 10, 400, false, false},
		{"just inside range", 250 + 20 + 9, 400, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipe(tt.pos, tt.height, cfg.Pipes.Gap)
			detected, hit := p.Check(b, h, cfg.Pipes.Width)
			if detected != tt.wantDetected || hit != tt.wantHit {
				t.Errorf("Check() = (%v, %v), want (%v, %v)", detected, hit, tt.wantDetected, tt.wantHit)
			}
		})
	}
}

func TestClearedPipeNeverScoresOrCollides(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg.Bird)

	// In range and squarely in the upper column
	p := NewPipe(250, 600, cfg.Pipes.Gap)
	if _, hit := p.Check(b, 720, cfg.Pipes.Width); !hit {
		t.Fatal("precondition: pipe should hit")
	}

	p.Cleared = true
	if detected, hit := p.Check(b, 720, cfg.Pipes.Width); detected || hit {
		t.Errorf("cleared pipe reported detected=%v hit=%v", detected, hit)
	}

	p.Pos = 0
	if p.TryClear(cfg.Bird.X, cfg.Bird.Size, cfg.Pipes.Width) {
		t.Error("cleared pipe scored again")
	}
}

func TestPipeTryClearOnce(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(201, 300, cfg.Pipes.Gap)

	if p.TryClear(cfg.Bird.X, cfg.Bird.Size, cfg.Pipes.Width) {
		t.Fatal("pipe at 201 is not yet behind the bird")
	}
	p.Pos = 200
	if !p.TryClear(cfg.Bird.X, cfg.Bird.Size, cfg.Pipes.Width) {
		t.Fatal("pipe at 200 should clear")
	}
	if p.TryClear(cfg.Bird.X, cfg.Bird.Size, cfg.Pipes.Width) {
		t.Error("second TryClear must return false")
	}
}

func TestPipeRemovalAndSweep(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	a := NewPipe(-395, 300, cfg.Gap)
	b := NewPipe(500, 300, cfg.Gap)

	a.Step(cfg.Speed, cfg.Width, cfg.Despawn) // -400, not yet past
	if a.Removed() {
		t.Fatal("pipe at exactly -400 should stay")
	}
	a.Step(cfg.Speed, cfg.Width, cfg.Despawn)
	b.Step(cfg.Speed, cfg.Width, cfg.Despawn)
	if !a.Removed() || b.Removed() {
		t.Fatalf("removed flags = (%v, %v), want (true, false)", a.Removed(), b.Removed())
	}

	pipes := sweep([]*Pipe{a, b})
	if len(pipes) != 1 || pipes[0] != b {
		t.Errorf("sweep kept %d pipes, want only the live one", len(pipes))
	}
}

func TestStepRemovedPipePanics(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	p := NewPipe(-1000, 300, cfg.Gap)
	p.Step(cfg.Speed, cfg.Width, cfg.Despawn)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when stepping a removed pipe")
		}
	}()
	p.Step(cfg.Speed, cfg.Width, cfg.Despawn)
}

func TestRandomPipeWithinMargins(t *testing.T) {
	g, _ := newTestGame(7)
	cfg := g.cfg.Pipes

	for i := 0; i < 200; i++ {
		p := RandomPipe(g.rng, 0, 720, cfg.Margin, cfg.Gap)
		center := (p.UpperEdge + p.LowerEdge) / 2
		if center < cfg.Margin || center > 720-cfg.Margin {
			t.Fatalf("gap center %v outside [%v, %v]", center, cfg.Margin, 720-cfg.Margin)
		}
	}
}

func TestFrameGameOverOnFloor(t *testing.T) {
	g, rec := newTestGame(1)
	r := &nopRenderer{}

	frames := 0
	for g.Loop().Running() && frames < 100 {
		g.Frame(r)
		frames++
	}

	// 600 - n(n+1)/2 first reaches the floor at n = 34
	if frames != 34 {
		t.Errorf("game over after %d frames, want 34", frames)
	}
	if len(rec.gameOver) != 1 || rec.gameOver[0] != 0 {
		t.Errorf("game over reports = %v, want [0]", rec.gameOver)
	}
	if !g.Session().Over {
		t.Error("session should be over")
	}

	// Frames after game over only redraw
	pos := g.Session().Bird.Pos
	g.Frame(r)
	if g.Session().Bird.Pos != pos || len(rec.gameOver) != 1 {
		t.Error("frame after game over must not advance or report")
	}
}

func TestFrameSpawnsOnInterval(t *testing.T) {
	g, _ := newTestGame(1)
	r := &nopRenderer{}

	keepAloft := func() {
		if g.Session().Bird.Pos < 400 {
			g.Press(core.ActionJump)
		}
	}

	for i := 0; i < 70; i++ {
		keepAloft()
		g.Frame(r)
	}
	if n := len(g.Session().Pipes); n != 0 {
		t.Fatalf("pipes after 70 frames = %d, want 0", n)
	}

	keepAloft()
	g.Frame(r)
	pipes := g.Session().Pipes
	if len(pipes) != 1 {
		t.Fatalf("pipes after 71 frames = %d, want 1", len(pipes))
	}
	if pipes[0].Pos != 1280+40 {
		t.Errorf("spawned at %v, want %v", pipes[0].Pos, 1280+40)
	}
	if g.Session().FramesSinceLastPipe != 0 {
		t.Error("spawn should reset the counter")
	}
	if r.clears != 71 {
		t.Errorf("clears = %d, want one per frame", r.clears)
	}
}

func TestFrameScoresPassedPipeOnce(t *testing.T) {
	g, rec := newTestGame(1)
	r := &nopRenderer{}
	s := g.Session()

	// Gap centered on the bird; one step brings the pipe to 200, behind the bird.
	s.Pipes = append(s.Pipes, NewPipe(205, 720-s.Bird.Pos, 250))

	g.Frame(r)
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	g.Press(core.ActionJump)
	g.Frame(r)
	if s.Score != 1 {
		t.Errorf("score = %d after a second frame, want 1", s.Score)
	}
	// Reset reports 0, then the point
	if len(rec.scores) != 2 || rec.scores[1] != 1 {
		t.Errorf("score reports = %v, want [0 1]", rec.scores)
	}
}

func TestFrameSweepsOffscreenPipes(t *testing.T) {
	g, _ := newTestGame(1)
	s := g.Session()
	s.Pipes = append(s.Pipes, NewPipe(-398, 300, 250), NewPipe(900, 300, 250))

	g.Frame(&nopRenderer{})
	if len(s.Pipes) != 1 || s.Pipes[0].Pos != 895 {
		t.Errorf("expected only the on-screen pipe to survive, got %d pipes", len(s.Pipes))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []float64 {
		g, _ := newTestGame(12345)
		r := &nopRenderer{}
		for i := 0; i < 400 && g.Loop().Running(); i++ {
			if g.Session().Bird.Pos < 350 {
				g.Press(core.ActionJump)
			}
			g.Frame(r)
		}
		var edges []float64
		for _, p := range g.Session().Pipes {
			edges = append(edges, p.UpperEdge)
		}
		return edges
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("pipe counts differ or are zero: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pipe %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestResetStopsLoop(t *testing.T) {
	g, _ := newTestGame(1)
	g.Reset(core.RuntimeConfig{Seed: 2}, nil)

	if g.Loop().Running() {
		t.Error("Reset must leave the loop stopped")
	}
	if g.Session().Bird.Pos != 600 || len(g.Session().Pipes) != 0 {
		t.Error("Reset must start a fresh session")
	}
}
