package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/registry"
)

func init() {
	registry.Register(config.FrontendTerminal, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays the game in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return config.FrontendTerminal
}

// Title returns a human-readable description.
func (Frontend) Title() string {
	return "Terminal (Bubble Tea, scaled to the window)"
}

// Run starts the Bubble Tea program and blocks until it exits.
func (Frontend) Run(opts registry.Options) error {
	if opts.Driver == nil {
		return errors.New("tui: no driver")
	}
	opts.Driver.Start(opts.Runtime)

	p := tea.NewProgram(
		NewModel(opts.Driver, opts.Config, opts.Runtime),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
