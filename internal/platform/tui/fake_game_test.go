package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinyarcade/internal/core"
	"github.com/vovakirdan/tinyarcade/internal/registry"
)

const fakeLogic core.ClockID = "logic"

// fakeGame records every call the platform makes.
type fakeGame struct {
	loop     core.Loop
	rep      core.Reporter
	resets   int
	frames   int
	ticks    []core.ClockID
	pressed  []core.Action
	released []core.Action
	overAt   int // Frame that ends the game; 0 never ends
	final    int
}

var _ registry.Game = (*fakeGame)(nil)

func newFakeGame() *fakeGame {
	return &fakeGame{final: 7}
}

func (g *fakeGame) ID() string                { return "fake" }
func (g *fakeGame) Title() string             { return "Fake Game" }
func (g *fakeGame) World() (float64, float64) { return 100, 50 }
func (g *fakeGame) Loop() *core.Loop          { return &g.loop }

func (g *fakeGame) Reset(_ core.RuntimeConfig, rep core.Reporter) {
	g.loop.Stop()
	g.rep = rep
	g.resets++
	g.frames = 0
	g.rep.ReportScore(0)
}

func (g *fakeGame) Clocks() []core.Clock {
	return []core.Clock{{ID: fakeLogic, Interval: core.HzInterval(30)}}
}

func (g *fakeGame) Frame(r core.Renderer) {
	r.Clear()
	g.frames++
	r.DrawRect(0, 0, 10, 10)
	if g.overAt > 0 && g.frames == g.overAt {
		g.loop.Stop()
		g.rep.ReportGameOver(g.final)
	}
}

func (g *fakeGame) Tick(id core.ClockID)  { g.ticks = append(g.ticks, id) }
func (g *fakeGame) Press(a core.Action)   { g.pressed = append(g.pressed, a) }
func (g *fakeGame) Release(a core.Action) { g.released = append(g.released, a) }

// keyMsg builds the key message a terminal sends for name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
