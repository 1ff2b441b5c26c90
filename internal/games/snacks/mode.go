package snacks

import "github.com/vovakirdan/snackrun/internal/core"

// Mode is the top-level state of a session.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeHelp
	ModeGameOver
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeHelp:
		return "help"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a side effect requested by a transition that the mode value
// alone cannot express.
type Command int

const (
	CommandNone Command = iota
	CommandRestart
	CommandQuit
)

// Transition applies the edge-triggered intents of one frame to mode.
//
// Intents are evaluated in a fixed order: help toggle, pause toggle, then
// restart/quit against the mode that results. Leaving Help always returns to
// Playing. Quit is honoured only in GameOver and Help; in GameOver a restart
// wins over a quit pressed in the same frame. Playing -> GameOver is not an
// input transition; the simulation drives it.
func Transition(mode Mode, in core.InputFrame) (Mode, Command) {
	if in.Has(core.ActionToggleHelp) {
		switch mode {
		case ModeHelp:
			mode = ModePlaying
		case ModePlaying, ModePaused:
			mode = ModeHelp
		}
	}

	if in.Has(core.ActionTogglePause) {
		switch mode {
		case ModePlaying:
			mode = ModePaused
		case ModePaused:
			mode = ModePlaying
		}
	}

	switch mode {
	case ModeGameOver:
		if in.Has(core.ActionRestart) {
			return ModePlaying, CommandRestart
		}
		if in.Has(core.ActionQuit) {
			return mode, CommandQuit
		}
	case ModeHelp:
		if in.Has(core.ActionQuit) {
			return mode, CommandQuit
		}
	}

	return mode, CommandNone
}
