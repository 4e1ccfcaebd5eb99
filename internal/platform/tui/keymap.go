package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// One key may map to several actions; W both flaps and moves a paddle up,
// and each game ignores the actions it does not use.
type KeyMapper struct {
	bindings map[string][]core.Action
	logger   *log.Logger
}

// NewKeyMapper creates a new key mapper with default bindings.
// Unknown keys are logged at debug level when logger is non-nil.
func NewKeyMapper(logger *log.Logger) *KeyMapper {
	jumpUp := []core.Action{core.ActionJump, core.ActionMoveUp}
	return &KeyMapper{
		bindings: map[string][]core.Action{
			" ":     {core.ActionJump},
			"w":     jumpUp,
			"up":    jumpUp,
			"s":     {core.ActionMoveDown},
			"down":  {core.ActionMoveDown},
			"a":     {core.ActionMoveLeft},
			"left":  {core.ActionMoveLeft},
			"d":     {core.ActionMoveRight},
			"right": {core.ActionMoveRight},
			"p":     {core.ActionPauseToggle},
			"o":     {core.ActionStepFrame},
		},
		logger: logger,
	}
}

// MapKey returns the actions bound to msg. ok is false for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, ok bool) {
	key := msg.String()
	actions, ok = km.bindings[key]
	if !ok && km.logger != nil {
		km.logger.Debug("ignoring unbound key", "key", key)
	}
	return actions, ok
}

// PlatformKey is a key handled by the game screen itself, not by the game.
type PlatformKey int

const (
	PlatformKeyNone PlatformKey = iota
	PlatformKeyQuit
	PlatformKeyBack
	PlatformKeyRestart
	PlatformKeyScreenshot
)

// MapPlatformKey checks for quit, back, restart and screenshot keys.
func (km *KeyMapper) MapPlatformKey(msg tea.KeyMsg) PlatformKey {
	switch msg.String() {
	case "ctrl+c", "q":
		return PlatformKeyQuit
	case "esc", "b":
		return PlatformKeyBack
	case "r":
		return PlatformKeyRestart
	case "ctrl+s":
		return PlatformKeyScreenshot
	}
	return PlatformKeyNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
