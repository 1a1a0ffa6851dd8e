package core

// Action is an abstract input action. The terminal layer translates key
// presses into actions so games never see raw key events.
type Action int

const (
	ActionNone Action = iota
	ActionFlap         // The surge impulse
	ActionConfirm      // Enter, menu selection
	ActionBack         // Escape, back out of a screen
	ActionRestart      // Start a new run after a crash
	ActionQuit         // Exit the program
	ActionPause        // Toggle pause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionFlap:
		return "flap"
	case ActionConfirm:
		return "confirm"
	case ActionBack:
		return "back"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	default:
		return "unknown"
	}
}

// InputFrame collects the actions pressed since the previous tick. The
// terminal layer fills one per tick and hands it to Game.Step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all pressed actions, readying the frame for the next
// tick.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}
