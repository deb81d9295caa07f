package core

// Action is a semantic player intent, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow: move paddle left
	ActionRight           // D, Right arrow: move paddle right
	ActionLaunch          // Space: start, launch held ball, resume after a lost life
	ActionPause           // P, Escape: pause or resume
	ActionContinue        // C: accept the continue offer after game over
	ActionConfirm         // Enter: confirm in menus
	ActionBack            // B: back to menu
	ActionRestart         // R: new game after game over
	ActionMute            // M: toggle sound
	ActionQuit            // Q, Ctrl+C: leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionContinue:
		return "Continue"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear removes all actions so the frame can be reused.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
