// Package config provides YAML-based configuration loading for the game's
// frontends: display settings and key bindings. Gameplay rules are fixed and
// live in the game package.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/snackrun/internal/core"
)

// Frontend names accepted in display.frontend.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// SnacksConfig contains all user-tunable settings.
type SnacksConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Keys     KeyBindings    `yaml:"keys"`
}

// DisplayConfig selects the frontend and its frame rate.
type DisplayConfig struct {
	FPS      int    `yaml:"fps"`
	Frontend string `yaml:"frontend"` // "terminal" or "window"
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // Window size multiplier over 800x600
}

// TerminalConfig defines terminal-specific behaviour.
type TerminalConfig struct {
	// HoldTicks is how long a movement key counts as held after a key
	// event. Terminals report presses and auto-repeats but no releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// KeyBindings maps logical keys to physical key names.
// Names follow Bubble Tea's key strings ("a", "left", "esc", "ctrl+x").
type KeyBindings struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Help    []string `yaml:"help"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// For returns the physical keys bound to a logical key.
func (k KeyBindings) For(key core.Key) []string {
	switch key {
	case core.KeyLeft:
		return k.Left
	case core.KeyRight:
		return k.Right
	case core.KeyPause:
		return k.Pause
	case core.KeyHelp:
		return k.Help
	case core.KeyRestart:
		return k.Restart
	case core.KeyQuit:
		return k.Quit
	default:
		return nil
	}
}

// Validate reports every problem in the configuration at once.
func (c SnacksConfig) Validate() error {
	var errs []error

	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	switch c.Display.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		errs = append(errs, fmt.Errorf("display.frontend must be %q or %q, got %q",
			FrontendTerminal, FrontendWindow, c.Display.Frontend))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale))
	}
	if c.Terminal.HoldTicks <= 0 {
		errs = append(errs, fmt.Errorf("terminal.hold_ticks must be positive, got %d", c.Terminal.HoldTicks))
	}
	for _, lk := range core.Keys() {
		names := c.Keys.For(lk)
		if len(names) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s has no bindings", lk))
			continue
		}
		for _, n := range names {
			if strings.TrimSpace(n) == "" {
				errs = append(errs, fmt.Errorf("keys.%s contains an empty key name", lk))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
