package core

import "testing"

func TestActionSet(t *testing.T) {
	var s ActionSet

	if !s.Empty() {
		t.Fatal("zero ActionSet should be empty")
	}

	s.Add(ActionMoveLeft)
	s.Add(ActionJump)

	if !s.Has(ActionMoveLeft) || !s.Has(ActionJump) {
		t.Errorf("set should contain MoveLeft and Jump, got %b", s)
	}
	if s.Has(ActionMoveRight) {
		t.Error("set should not contain MoveRight")
	}

	// Adding twice is idempotent
	s.Add(ActionJump)
	s.Remove(ActionJump)
	if s.Has(ActionJump) {
		t.Error("Jump should be removed after a single Remove")
	}

	// Removing a missing action is a no-op
	s.Remove(ActionMoveDown)
	if !s.Has(ActionMoveLeft) {
		t.Error("removing an absent action should not affect others")
	}

	s.Clear()
	if !s.Empty() {
		t.Error("Clear should empty the set")
	}
}

func TestActionSetIgnoresInvalid(t *testing.T) {
	var s ActionSet
	s.Add(ActionNone)
	s.Add(Action(200))

	if !s.Empty() {
		t.Errorf("invalid actions should be ignored, got %b", s)
	}
	if s.Has(Action(200)) {
		t.Error("Has should be false for invalid action")
	}
}

func TestActionString(t *testing.T) {
	if ActionPauseToggle.String() != "PauseToggle" {
		t.Errorf("String() = %q", ActionPauseToggle.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() for out-of-range action = %q", Action(99).String())
	}
}
