package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tinyarcade/internal/storage"
)

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func columnTitles(entries []storage.ScoreEntry) []string {
	var titles []string
	for _, c := range scoreColumns(entries, 80) {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestScoreColumnsFollowResults(t *testing.T) {
	plain := []storage.ScoreEntry{{Score: 4}}
	if got := strings.Join(columnTitles(plain), ","); got != "Rank,Player,Score,Run,Date" {
		t.Errorf("single-score columns = %s", got)
	}

	match := []storage.ScoreEntry{{Score: 5, Result: "5 : 3"}, {Score: 2}}
	if got := strings.Join(columnTitles(match), ","); got != "Rank,Player,Score,Match,Run,Date" {
		t.Errorf("match columns = %s", got)
	}
}

func TestScoreColumnsPlayerTakesSlack(t *testing.T) {
	narrow := scoreColumns(nil, 40)
	wide := scoreColumns(nil, 200)
	if narrow[1].Width != playerMinWidth {
		t.Errorf("narrow player width = %d, want %d", narrow[1].Width, playerMinWidth)
	}
	if wide[1].Width != playerMaxWidth {
		t.Errorf("wide player width = %d, want %d", wide[1].Width, playerMaxWidth)
	}
}

func TestScoreRowsMarkPlayerAndRun(t *testing.T) {
	entries := []storage.ScoreEntry{
		{Player: "alice", Score: 9, Result: "9 : 2", RunID: "0123456789abcdef"},
		{Player: "", Score: 3},
	}
	rows := scoreRows(entries, "alice")

	if rows[0][0] != "#1*" {
		t.Errorf("own run rank = %q, want #1*", rows[0][0])
	}
	if rows[0][3] != "9 : 2" || rows[0][4] != "01234567" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][1] != "-" || rows[1][3] != "-" || rows[1][4] != "-" {
		t.Errorf("legacy row = %v", rows[1])
	}
}

func TestScoreboardShowsSavedRuns(t *testing.T) {
	store := openBoardStore(t)
	run := storage.NewRun("fake", "alice")
	if err := store.SaveResult(run, 5, "5 : 3"); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	m := NewScoreboardModel(store, "alice", 100, 30)
	view := m.View()
	for _, want := range []string{"Fake Game", "1 runs  best 5", "5 : 3", "#1*", run.ID.String()[:runIDWidth]} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard should contain %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	view := m.View()
	if !strings.Contains(view, "No scores recorded yet") || !strings.Contains(view, "no runs yet") {
		t.Errorf("unexpected empty view:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)

	next, cmd := m.Update(keyMsg("esc"))
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Errorf("esc should go back, got back=%v quit=%v", back.IsGoingBack(), back.IsQuitting())
	}

	next, _ = m.Update(keyMsg("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
