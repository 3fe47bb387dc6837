package core

// Action represents a semantic game action, abstracted from physical key
// presses. The game works with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left
	ActionRight          // Right arrow, D - move paddle right
	ActionLaunch         // Space - launch ball from the paddle
	ActionPause          // P, Space mid-play - pause/unpause
	ActionRestart        // R - full restart (score, lives, level)
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
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the set of actions triggered this frame plus an optional pointer position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the pointer column in screen cells, valid only when
	// HasPointer is set. Pointer motion steers the paddle absolutely.
	PointerX   int
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records an absolute pointer position for this frame.
func (f *InputFrame) SetPointer(x int) {
	f.PointerX = x
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
	f.PointerX = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.HasPointer = f.HasPointer
	return clone
}
