package core

import "time"

// LoopState is the run state of a game's frame driver.
type LoopState int

const (
	LoopStopped LoopState = iota
	LoopRunning
)

func (s LoopState) String() string {
	if s == LoopRunning {
		return "Running"
	}
	return "Stopped"
}

// Loop is the running/stopped state machine behind a frame driver.
//
// Every transition into LoopRunning opens a new epoch. Scheduled callbacks
// carry the epoch they were scheduled under and must check Current before
// rescheduling themselves, so a stop followed by a start never leaves two
// callback chains alive.
type Loop struct {
	state LoopState
	epoch uint64
}

// State returns the current loop state.
func (l *Loop) State() LoopState {
	return l.state
}

// Running returns true while the loop should keep rescheduling.
func (l *Loop) Running() bool {
	return l.state == LoopRunning
}

// Epoch returns the epoch of the most recent start.
func (l *Loop) Epoch() uint64 {
	return l.epoch
}

// Start moves the loop to LoopRunning. It returns the new epoch and true
// if the loop was stopped; callers schedule the first callback with it.
// Starting a running loop is a no-op.
func (l *Loop) Start() (uint64, bool) {
	if l.state == LoopRunning {
		return l.epoch, false
	}
	l.state = LoopRunning
	l.epoch++
	return l.epoch, true
}

// Stop moves the loop to LoopStopped. Returns true if it was running.
// Callbacks already in flight finish their current frame.
func (l *Loop) Stop() bool {
	if l.state == LoopStopped {
		return false
	}
	l.state = LoopStopped
	return true
}

// Toggle flips between running and stopped. The return values are those
// of Start when the loop was started, or (0, false) when it was stopped.
func (l *Loop) Toggle() (uint64, bool) {
	if l.state == LoopRunning {
		l.Stop()
		return 0, false
	}
	return l.Start()
}

// Current reports whether a callback scheduled under epoch may reschedule.
func (l *Loop) Current(epoch uint64) bool {
	return l.state == LoopRunning && epoch == l.epoch
}

// ClockID names a fixed-rate callback owned by a game.
type ClockID string

// FrameClock is the display-refresh callback every game has.
const FrameClock ClockID = "frame"

// Clock describes an extra fixed-rate callback a game wants scheduled
// next to its frame callback (a logic tick, an AI decision timer).
type Clock struct {
	ID       ClockID
	Interval time.Duration
}

// HzInterval converts a rate in ticks per second to a tick interval.
// Non-positive rates fall back to 60 Hz.
func HzInterval(hz int) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Second / time.Duration(hz)
}
