// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// TickMsg is sent when a scheduled callback of a game clock is due.
// Epoch is the loop epoch the callback was scheduled under; a message from
// an older epoch, or from another game's loop, is dropped instead of rescheduled.
type TickMsg struct {
	Clock core.ClockID
	Epoch uint64
	loop  *core.Loop
}

// tickCmd returns a Bubble Tea command that fires one TickMsg after interval.
func tickCmd(loop *core.Loop, id core.ClockID, interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Clock: id, Epoch: epoch, loop: loop}
	})
}

// scheduler owns the callback chains of one game: the frame clock at the
// display rate plus every extra clock the game declares.
type scheduler struct {
	loop   *core.Loop
	frame  time.Duration
	clocks map[core.ClockID]time.Duration
}

func newScheduler(loop *core.Loop, fps int, clocks []core.Clock) scheduler {
	s := scheduler{
		loop:   loop,
		frame:  core.HzInterval(fps),
		clocks: make(map[core.ClockID]time.Duration, len(clocks)),
	}
	for _, c := range clocks {
		s.clocks[c.ID] = c.Interval
	}
	return s
}

// start schedules the first callback of every chain for epoch.
func (s scheduler) start(epoch uint64) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.clocks)+1)
	cmds = append(cmds, tickCmd(s.loop, core.FrameClock, s.frame, epoch))
	for id, interval := range s.clocks {
		cmds = append(cmds, tickCmd(s.loop, id, interval, epoch))
	}
	return tea.Batch(cmds...)
}

// current reports whether msg belongs to a live chain of this scheduler.
func (s scheduler) current(msg TickMsg) bool {
	return msg.loop == s.loop && s.loop.Current(msg.Epoch)
}

// next schedules the following callback of the chain msg belongs to.
// It returns nil for a clock the game does not own.
func (s scheduler) next(msg TickMsg) tea.Cmd {
	if msg.Clock == core.FrameClock {
		return tickCmd(s.loop, msg.Clock, s.frame, msg.Epoch)
	}
	interval, ok := s.clocks[msg.Clock]
	if !ok {
		return nil
	}
	return tickCmd(s.loop, msg.Clock, interval, msg.Epoch)
}
