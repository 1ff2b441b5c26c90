package snacks

import (
	"testing"

	"github.com/vovakirdan/snackrun/internal/core"
)

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     Mode
		in       core.InputFrame
		wantMode Mode
		wantCmd  Command
	}{
		{"no input stays", ModePlaying, frameWith(), ModePlaying, CommandNone},
		{"pause from playing", ModePlaying, frameWith(core.ActionTogglePause), ModePaused, CommandNone},
		{"resume from paused", ModePaused, frameWith(core.ActionTogglePause), ModePlaying, CommandNone},
		{"help from playing", ModePlaying, frameWith(core.ActionToggleHelp), ModeHelp, CommandNone},
		{"help from paused", ModePaused, frameWith(core.ActionToggleHelp), ModeHelp, CommandNone},
		{"help closes to playing", ModeHelp, frameWith(core.ActionToggleHelp), ModePlaying, CommandNone},
		{"pause ignored in help", ModeHelp, frameWith(core.ActionTogglePause), ModeHelp, CommandNone},
		{"help and pause together from playing", ModePlaying, frameWith(core.ActionToggleHelp, core.ActionTogglePause), ModeHelp, CommandNone},
		{"toggles ignored in game over", ModeGameOver, frameWith(core.ActionToggleHelp, core.ActionTogglePause), ModeGameOver, CommandNone},
		{"restart from game over", ModeGameOver, frameWith(core.ActionRestart), ModePlaying, CommandRestart},
		{"restart ignored while playing", ModePlaying, frameWith(core.ActionRestart), ModePlaying, CommandNone},
		{"restart ignored while paused", ModePaused, frameWith(core.ActionRestart), ModePaused, CommandNone},
		{"quit from game over", ModeGameOver, frameWith(core.ActionQuit), ModeGameOver, CommandQuit},
		{"quit from help", ModeHelp, frameWith(core.ActionQuit), ModeHelp, CommandQuit},
		{"quit ignored while playing", ModePlaying, frameWith(core.ActionQuit), ModePlaying, CommandNone},
		{"quit ignored while paused", ModePaused, frameWith(core.ActionQuit), ModePaused, CommandNone},
		{"restart wins over quit", ModeGameOver, frameWith(core.ActionRestart, core.ActionQuit), ModePlaying, CommandRestart},
		{"movement never transitions", ModePaused, frameWith(core.ActionMoveLeft, core.ActionMoveRight), ModePaused, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, cmd := Transition(tc.from, tc.in)
			if mode != tc.wantMode {
				t.Errorf("mode = %v, expected %v", mode, tc.wantMode)
			}
			if cmd != tc.wantCmd {
				t.Errorf("command = %v, expected %v", cmd, tc.wantCmd)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for _, m := range []Mode{ModePlaying, ModePaused, ModeHelp, ModeGameOver} {
		if m.String() == "unknown" {
			t.Errorf("mode %d has no name", m)
		}
	}
}
