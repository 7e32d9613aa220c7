package core

import "strings"

// Action is a semantic input, independent of the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Run left while held
	ActionRight          // Run right while held
	ActionJump           // Jump; also acknowledges a finished level
	ActionConfirm        // Acknowledge a finished level without jumping
	ActionBack           // Pause, or leave a paused run for the menu
	ActionRestart        // New run after game over
	ActionQuit           // Leave the program or session
	ActionPause          // Toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Jump", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one tick.
// The zero value is an empty frame; frames compare with ==.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Direction folds Left and Right into -1, 0 or 1.
// Holding both cancels out.
func (f InputFrame) Direction() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f InputFrame) String() string {
	names := make([]string, 0, actionCount)
	for _, a := range f.Actions() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
