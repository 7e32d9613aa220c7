package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) not visible through Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"idle", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"jump only", []Action{ActionJump}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.want {
				t.Errorf("Direction() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionPause.String() != "Pause" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}

func TestInputFrameListing(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(Action(99))

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionPause {
		t.Errorf("Actions() = %v, expected [Left Pause]", got)
	}
	if s := f.String(); s != "[Left Pause]" {
		t.Errorf("String() = %q", s)
	}

	g := NewInputFrame()
	g.Set(ActionLeft)
	g.Set(ActionPause)
	if f != g {
		t.Error("frames with the same actions should be equal")
	}
	if !NewInputFrame().Empty() || f.Empty() {
		t.Error("Empty() wrong")
	}
}
