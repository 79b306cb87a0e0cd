package config

import "time"

// Config holds the application configuration.
type Config struct {
	// SettingsBackend is one of file, sqlite, memory or none.
	SettingsBackend string        `yaml:"settings_backend"`
	SettingsPath    string        `yaml:"settings_path"`
	Definition      string        `yaml:"definition"`
	LogLevel        string        `yaml:"log_level"`
	ResizeDebounce  time.Duration `yaml:"resize_debounce"`
	AnchorInset     float64       `yaml:"anchor_inset"`
	ScriptTimeout   time.Duration `yaml:"script_timeout"`
	LightPalette    string        `yaml:"light_palette"`
	DarkPalette     string        `yaml:"dark_palette"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SettingsBackend: "file",
		SettingsPath:    "",
		Definition:      "",
		LogLevel:        "info",
		ResizeDebounce:  150 * time.Millisecond,
		AnchorInset:     1,
		ScriptTimeout:   5 * time.Second,
		LightPalette:    "catppuccin-latte",
		DarkPalette:     "catppuccin-mocha",
	}
}
