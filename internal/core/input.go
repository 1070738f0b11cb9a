package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow - move up
	ActionDown         // Down arrow - move down
	ActionLeft         // Left arrow - move left
	ActionRight        // Right arrow - move right
	ActionFire         // Space - fire a beam
	ActionQuit         // Q, Esc, Ctrl+C, window close - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Held actions describe keys that are down right now; presses are discrete
// key-down events queued since the previous tick, in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	presses []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press queues a discrete key-down event.
func (f *InputFrame) Press(a Action) {
	f.presses = append(f.presses, a)
}

// Presses returns how many times the action was pressed since the last tick.
func (f InputFrame) Presses(a Action) int {
	n := 0
	for _, p := range f.presses {
		if p == a {
			n++
		}
	}
	return n
}

// Clear resets held actions and queued presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.presses = f.presses[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.presses = append([]Action(nil), f.presses...)
	return clone
}
