package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// event. Terminals report presses and autorepeats but never releases.
const DefaultHoldWindow = 250 * time.Millisecond

// releaseMsg fires when a held key's window may have run out.
// gen identifies the press that scheduled it; later presses make it stale.
type releaseMsg struct {
	key string
	gen uint64
}

type heldKey struct {
	actions []core.Action
	gen     uint64
}

// HeldKeys emulates key-up events. Every press of a key refreshes its
// window; when the window runs out without another press the key is released.
type HeldKeys struct {
	window time.Duration
	keys   map[string]*heldKey
	gen    uint64
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		keys:   make(map[string]*heldKey),
	}
}

// Hold records a press of key bound to actions and returns the command
// that will report its expiry.
func (h *HeldKeys) Hold(key string, actions []core.Action) tea.Cmd {
	hk, ok := h.keys[key]
	if !ok {
		hk = &heldKey{}
		h.keys[key] = hk
	}
	h.gen++
	hk.actions = actions
	hk.gen = h.gen

	msg := releaseMsg{key: key, gen: hk.gen}
	return tea.Tick(h.window, func(time.Time) tea.Msg { return msg })
}

// Expire handles a release message. It returns the actions to release:
// none if the key was pressed again since, and never an action that
// another held key is still bound to.
func (h *HeldKeys) Expire(msg releaseMsg) []core.Action {
	hk, ok := h.keys[msg.key]
	if !ok || hk.gen != msg.gen {
		return nil
	}
	delete(h.keys, msg.key)

	var still core.ActionSet
	for _, other := range h.keys {
		for _, a := range other.actions {
			still.Add(a)
		}
	}

	released := make([]core.Action, 0, len(hk.actions))
	for _, a := range hk.actions {
		if !still.Has(a) {
			released = append(released, a)
		}
	}
	return released
}

// Held reports whether key is inside its hold window.
func (h *HeldKeys) Held(key string) bool {
	_, ok := h.keys[key]
	return ok
}

// Reset forgets every held key. Pending release messages become stale.
func (h *HeldKeys) Reset() {
	clear(h.keys)
}
