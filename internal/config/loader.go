package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in defaults as a configuration source.
const SourceEmbedded = "embedded defaults"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snacks.yaml"

// LoadSnacks loads the configuration and reports where it came from.
// Search order: customPath -> ~/.snackrun/config.yaml -> ./configs/snacks.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep their defaults.
// An explicit customPath must exist and parse; the other locations are
// skipped when missing or unreadable.
func LoadSnacks(customPath string) (SnacksConfig, string, error) {
	base := embeddedDefaults()

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath, base)
		if err != nil {
			return SnacksConfig{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return SnacksConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path, base)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return SnacksConfig{}, "", fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return base, SourceEmbedded, nil
}

// Parse decodes YAML on top of the embedded defaults and validates it.
func Parse(data []byte) (SnacksConfig, error) {
	cfg := embeddedDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnacksConfig{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnacksConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnacksConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// loadFile reads a YAML file on top of base.
func loadFile(path string, base SnacksConfig) (SnacksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnacksConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := base
	cfg.Keys = base.Keys.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnacksConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedDefaults decodes the embedded YAML, falling back to the hardcoded
// defaults if the embed is broken.
func embeddedDefaults() SnacksConfig {
	cfg := DefaultSnacksConfig()
	if err := yaml.Unmarshal(defaultSnacksYAML, &cfg); err != nil {
		return DefaultSnacksConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snackrun", filename)
}

func (k KeyBindings) clone() KeyBindings {
	cp := func(s []string) []string { return append([]string(nil), s...) }
	return KeyBindings{
		Left:    cp(k.Left),
		Right:   cp(k.Right),
		Pause:   cp(k.Pause),
		Help:    cp(k.Help),
		Restart: cp(k.Restart),
		Quit:    cp(k.Quit),
	}
}
