package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionTrigger)
	f.Push(ActionNone)
	f.Push(ActionFlap)

	got := f.Actions()
	if len(got) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(got))
	}
	if got[0] != ActionTrigger || got[1] != ActionFlap {
		t.Errorf("actions out of order: %v", got)
	}
	if !f.Has(ActionFlap) || f.Has(ActionPause) {
		t.Error("Has() reported wrong membership")
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Error("Clear() should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "Flap" {
		t.Errorf("ActionFlap.String() = %q", ActionFlap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
