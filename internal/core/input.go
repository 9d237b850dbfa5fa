package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, mouse click
	ActionConfirm        // Enter
	ActionBack           // B, Esc
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for one simulation tick.
//
// Pressed holds actions that started this tick. Held holds actions that are
// down during the tick, including the ones that were pressed.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) this tick.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// SetHeld marks an action as held without a fresh press.
func (f *InputFrame) SetHeld(a Action) {
	f.ensure()
	f.Held[a] = true
}

// Has reports whether the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld reports whether the action is down this tick.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}
