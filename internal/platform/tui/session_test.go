package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinyarcade/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return newFakeGame() })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{Player: "alice"})

	if !strings.Contains(m.View(), "Fake Game") {
		t.Fatalf("menu should list registered games:\n%s", m.View())
	}

	m, cmd := sessionUpdate(t, m, keyMsg("enter"))
	if !m.InGame() {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule its loop")
	}
	if !strings.Contains(m.View(), "Esc: menu") {
		t.Error("game inside the session should offer Esc to return")
	}

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.InGame() {
		t.Error("esc should return to the menu")
	}
	if !strings.Contains(m.View(), "Select a game") {
		t.Errorf("expected menu view:\n%s", m.View())
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{})

	m, _ = sessionUpdate(t, m, keyMsg("tab"))
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Fatalf("tab should open the scoreboard:\n%s", m.View())
	}

	m, cmd := sessionUpdate(t, m, keyMsg("esc"))
	if !strings.Contains(m.View(), "Select a game") {
		t.Errorf("esc should return to the menu:\n%s", m.View())
	}
	if cmd != nil {
		t.Error("returning to the menu must not quit the program")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{})

	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	m, cmd := sessionUpdate(t, m, keyMsg("q"))
	if cmd == nil {
		t.Error("q in game should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
