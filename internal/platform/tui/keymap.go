package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// holdWindow is how long a direction key counts as held after its last
// press. Terminals send repeats but no key release, so the paddle keeps
// moving while repeats arrive and stops shortly after they end.
const holdWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionLaunch, false
	case "p", "esc":
		return core.ActionPause, false
	case "c":
		return core.ActionContinue, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	}

	return core.ActionNone, false
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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// holdTracker turns repeated direction presses into a held direction.
type holdTracker struct {
	dir  core.Action // ActionLeft, ActionRight or ActionNone
	last time.Time
}

// press records a direction key. Pressing the opposite direction takes over
// immediately.
func (h *holdTracker) press(dir core.Action, now time.Time) {
	h.dir = dir
	h.last = now
}

// release forgets the held direction.
func (h *holdTracker) release() {
	h.dir = core.ActionNone
}

// apply sets the held direction on the frame if it is still within the
// hold window.
func (h *holdTracker) apply(frame *core.InputFrame, now time.Time) {
	if h.dir == core.ActionNone {
		return
	}
	if now.Sub(h.last) > holdWindow {
		h.dir = core.ActionNone
		return
	}
	frame.Set(h.dir)
}
