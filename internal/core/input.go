package core

// Action represents a semantic game action, abstracted from physical key presses.
// The set is closed: anything the platform cannot map to one of these is ignored.
type Action uint8

const (
	ActionNone        Action = iota
	ActionJump               // Space, W - jump/flap
	ActionMoveLeft           // A, Left arrow
	ActionMoveRight          // D, Right arrow
	ActionMoveUp             // W, Up arrow - paddle up
	ActionMoveDown           // S, Down arrow - paddle down
	ActionPauseToggle        // P - pause/unpause
	ActionStepFrame          // O - advance one frame while paused

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionPauseToggle:
		return "PauseToggle"
	case ActionStepFrame:
		return "StepFrame"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is a member of the closed action set.
func (a Action) Valid() bool {
	return a > ActionNone && a < actionCount
}

// ActionSet is a set of currently held actions stored as bit flags.
// The zero value is an empty set.
type ActionSet uint16

// Add inserts a into the set. Invalid actions are ignored.
func (s *ActionSet) Add(a Action) {
	if !a.Valid() {
		return
	}
	*s |= 1 << a
}

// Remove deletes a from the set.
func (s *ActionSet) Remove(a Action) {
	if !a.Valid() {
		return
	}
	*s &^= 1 << a
}

// Has returns true if a is in the set.
func (s ActionSet) Has(a Action) bool {
	if !a.Valid() {
		return false
	}
	return s&(1<<a) != 0
}

// Clear empties the set.
func (s *ActionSet) Clear() {
	*s = 0
}

// Empty returns true if no action is held.
func (s ActionSet) Empty() bool {
	return s == 0
}
