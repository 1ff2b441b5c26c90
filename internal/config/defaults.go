package config

import (
	_ "embed"
)

//go:embed defaults/snacks.yaml
var defaultSnacksYAML []byte

// DefaultSnacksConfig returns the built-in configuration.
// It mirrors defaults/snacks.yaml and is used when the embedded file cannot
// be parsed.
func DefaultSnacksConfig() SnacksConfig {
	return SnacksConfig{
		Display: DisplayConfig{
			FPS:      60,
			Frontend: FrontendTerminal,
		},
		Window: WindowConfig{
			Title: "Marathon Snack Collector",
			Scale: 1.0,
		},
		Terminal: TerminalConfig{
			HoldTicks: 24,
		},
		Keys: KeyBindings{
			Left:    []string{"a", "q", "left"},
			Right:   []string{"d", "right"},
			Pause:   []string{"p"},
			Help:    []string{"h"},
			Restart: []string{"r"},
			Quit:    []string{"q"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnacksYAML
}
