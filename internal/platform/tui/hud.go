package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinyarcade/internal/storage"
)

// ScoreSaver persists the best score of a run along with a short result
// line, such as the match score of a two-sided game.
type ScoreSaver interface {
	SaveResult(run storage.Run, score int, result string) error
}

// HUD receives score reports from the running game and keeps what the
// status line shows. It implements core.Reporter and core.MatchReporter.
type HUD struct {
	Score    int
	Left     int
	Right    int
	Match    bool // Two-sided score reported
	GameOver bool
	Final    int

	run    storage.Run
	saver  ScoreSaver
	logger *log.Logger
}

// NewHUD creates a HUD. saver and logger may be nil.
func NewHUD(saver ScoreSaver, logger *log.Logger) *HUD {
	return &HUD{saver: saver, logger: logger}
}

// NewRun clears the HUD for a fresh session and starts a new score run.
func (h *HUD) NewRun(gameID, player string) {
	h.Score, h.Left, h.Right, h.Final = 0, 0, 0, 0
	h.Match = false
	h.GameOver = false
	h.run = storage.NewRun(gameID, player)
}

// Run returns the current score run.
func (h *HUD) Run() storage.Run {
	return h.run
}

// ReportScore shows the running score.
func (h *HUD) ReportScore(value int) {
	h.Score = value
}

// ReportMatch switches the status line to a left : right match score.
func (h *HUD) ReportMatch(left, right int) {
	h.Match = true
	h.Left, h.Right = left, right
}

// ReportGameOver freezes the final score and saves the run.
func (h *HUD) ReportGameOver(finalScore int) {
	h.GameOver = true
	h.Final = finalScore
	h.Score = finalScore
	h.Save()
}

// Result is the match score as "left : right", or empty for single-score
// games.
func (h *HUD) Result() string {
	if !h.Match {
		return ""
	}
	return fmt.Sprintf("%d : %d", h.Left, h.Right)
}

// Save stores the current score for the run. Zero scores are not saved
// and failures are only logged.
func (h *HUD) Save() {
	if h.saver == nil || h.Score <= 0 {
		return
	}
	if err := h.saver.SaveResult(h.run, h.Score, h.Result()); err != nil {
		if h.logger != nil {
			h.logger.Warn("could not save score", "game", h.run.GameID, "run", h.run.ID, "error", err)
		}
		return
	}
	if h.logger != nil {
		h.logger.Debug("score saved", "game", h.run.GameID, "run", h.run.ID, "score", h.Score)
	}
}
