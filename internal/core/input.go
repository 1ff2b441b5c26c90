package core

// Key is a logical key, abstracted from physical keyboard layouts.
// Frontends bind one or more physical keys to each logical key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyPause
	KeyHelp
	KeyRestart
	KeyQuit
	numKeys
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPause:
		return "pause"
	case KeyHelp:
		return "help"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Keys returns every logical key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, numKeys)
	for k := Key(0); k < numKeys; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyState is the raw input of one frame: which logical keys are held
// (level) and which went down during the frame (edge).
type KeyState struct {
	Down    [numKeys]bool
	Pressed [numKeys]bool
}

// Press records a key-down edge. A pressed key also counts as held.
func (s *KeyState) Press(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	s.Pressed[k] = true
	s.Down[k] = true
}

// Hold records that a key is held down without a new edge.
func (s *KeyState) Hold(k Key) {
	if k < 0 || k >= numKeys {
		return
	}
	s.Down[k] = true
}

// IsDown reports whether the key is held this frame.
func (s KeyState) IsDown(k Key) bool {
	return k >= 0 && k < numKeys && s.Down[k]
}

// WasPressed reports whether the key went down this frame.
func (s KeyState) WasPressed(k Key) bool {
	return k >= 0 && k < numKeys && s.Pressed[k]
}

// Action is a semantic game intent derived from raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // level-triggered
	ActionMoveRight          // level-triggered
	ActionTogglePause        // edge-triggered
	ActionToggleHelp         // edge-triggered
	ActionRestart            // edge-triggered
	ActionQuit               // edge-triggered
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionTogglePause:
		return "TogglePause"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents of a single simulation tick.
type InputFrame struct {
	// Actions maps intents to whether they are asserted this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as asserted for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is asserted this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// MapIntents translates raw key state into intents.
// Movement follows the held state so it repeats every frame; toggles,
// restart and quit follow key-down edges so holding a key fires once.
// Left and right are independent: holding both asserts both.
func MapIntents(s KeyState) InputFrame {
	in := NewInputFrame()
	if s.IsDown(KeyLeft) {
		in.Set(ActionMoveLeft)
	}
	if s.IsDown(KeyRight) {
		in.Set(ActionMoveRight)
	}
	if s.WasPressed(KeyPause) {
		in.Set(ActionTogglePause)
	}
	if s.WasPressed(KeyHelp) {
		in.Set(ActionToggleHelp)
	}
	if s.WasPressed(KeyRestart) {
		in.Set(ActionRestart)
	}
	if s.WasPressed(KeyQuit) {
		in.Set(ActionQuit)
	}
	return in
}
