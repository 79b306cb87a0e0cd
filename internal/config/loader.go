package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from ~/.config/floatbar/config.yaml.
func Load() Config {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "floatbar", "config.yaml"), nil
}

// StateDir returns ~/.local/state/floatbar, where logs and settings live.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "floatbar"), nil
}

// ResolveSettingsPath fills in the default location for the configured
// backend when SettingsPath is empty.
func (c Config) ResolveSettingsPath() string {
	if c.SettingsPath != "" {
		return c.SettingsPath
	}
	dir, err := StateDir()
	if err != nil {
		return ""
	}
	switch c.SettingsBackend {
	case "sqlite":
		return filepath.Join(dir, "settings.db")
	case "", "file":
		return filepath.Join(dir, "settings")
	}
	return ""
}
