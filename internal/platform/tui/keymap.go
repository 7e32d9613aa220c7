package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// defaultGameKeys lists every in-game binding. Left and right come from
// both WASD and the arrows; up doubles as jump.
var defaultGameKeys = map[core.Action][]string{
	core.ActionLeft:    {"a", "left"},
	core.ActionRight:   {"d", "right"},
	core.ActionJump:    {" ", "w", "up"},
	core.ActionConfirm: {"enter"},
	core.ActionBack:    {"b", "esc"},
	core.ActionPause:   {"p"},
	core.ActionRestart: {"r"},
	core.ActionQuit:    {"q", "ctrl+c"},
}

var defaultMenuKeys = map[MenuAction][]string{
	MenuActionQuit:       {"q", "ctrl+c"},
	MenuActionUp:         {"w", "up", "k"},
	MenuActionDown:       {"s", "down", "j"},
	MenuActionLeft:       {"a", "left", "h"},
	MenuActionRight:      {"d", "right", "l"},
	MenuActionSelect:     {"enter", " "},
	MenuActionBack:       {"b", "esc"},
	MenuActionScoreboard: {"tab"},
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}
	for action, keys := range defaultGameKeys {
		for _, k := range keys {
			km.game[k] = action
		}
	}
	for action, keys := range defaultMenuKeys {
		for _, k := range keys {
			km.menu[k] = action
		}
	}
	return km
}

// Bind maps a key to an in-game action, replacing any previous binding.
// Binding ActionNone disables the key.
func (km *KeyMapper) Bind(key string, action core.Action) {
	if action == core.ActionNone {
		delete(km.game, key)
		return
	}
	km.game[key] = action
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// holdWindow is how long a direction key counts as held after its last
// key event. Terminals report no key releases, only auto-repeat presses.
const holdWindow = 150 * time.Millisecond

// directionHold turns discrete Left/Right key presses into a held direction.
type directionHold struct {
	dir   core.Action
	ticks int
	span  int
}

func newDirectionHold(tickRate int) directionHold {
	return directionHold{span: core.RuntimeConfig{TickRate: tickRate}.Ticks(holdWindow)}
}

// Press starts or refreshes the hold. The opposite direction replaces it.
func (h *directionHold) Press(a core.Action) {
	h.dir = a
	h.ticks = h.span
}

// Release drops any held direction.
func (h *directionHold) Release() {
	h.dir = core.ActionNone
	h.ticks = 0
}

// Apply marks the held direction on the frame and ages the hold by one tick.
func (h *directionHold) Apply(frame *core.InputFrame) {
	if h.ticks <= 0 {
		return
	}
	frame.Set(h.dir)
	h.ticks--
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
