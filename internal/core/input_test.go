package core

import "testing"

func TestInputFrameCollapsesRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Set(ActionJump)

	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should store one action, got %d", len(f.Actions))
	}
	if !f.Has(ActionJump) || f.Has(ActionQuit) {
		t.Error("Has() reports wrong actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := InputOf(ActionJump, ActionConfirm)
	clone := f.Clone()
	f.Clear()

	if f.HasAny(ActionJump, ActionConfirm) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) || !clone.Has(ActionConfirm) {
		t.Error("Clone should be independent of the original")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseGameOver.String() != "GameOver" || Phase(42).String() != "Unknown" {
		t.Error("unexpected Phase names")
	}
}
