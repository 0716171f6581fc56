package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents (jump, fire, pause) rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionJump           // Space, Up - runner jump
	ActionFire           // Space - shooter fire (held for auto-fire)
	ActionPause          // P - pause/unpause
	ActionStart          // Enter, R - begin a session or restart after game over
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionJump:    "Jump",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionStart:   "Start",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Known reports whether the action belongs to the fixed action set.
func (a Action) Known() bool {
	_, ok := actionNames[a]
	return ok && a != ActionNone
}

// InputFrame is the input state for one simulation tick.
// Pressed holds edge-triggered actions (key went down since the last tick);
// Held holds actions whose key is still considered down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. A pressed action is also held.
// Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if !a.Known() {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without producing a press edge.
func (f *InputFrame) Hold(a Action) {
	if !a.Known() {
		return
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// IsHeld returns true if the action is pressed or held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
