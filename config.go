package ui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the runtime switches of the toolkit.
type Config struct {
	Verbose   bool   `toml:"verbose"`
	ThemeFile string `toml:"theme_file"`
	// WatchTheme reloads ThemeFile whenever it changes on disk.
	WatchTheme bool `toml:"watch_theme"`
	// HoverClaimsFocus promotes mouse hover into a focus claim so the
	// keyboard target follows the pointer.
	HoverClaimsFocus  bool    `toml:"hover_claims_focus"`
	PadRepeatDelay    float32 `toml:"pad_repeat_delay"`
	PadRepeatInterval float32 `toml:"pad_repeat_interval"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		HoverClaimsFocus:  true,
		PadRepeatDelay:    PadRepeatDelay,
		PadRepeatInterval: PadRepeatInterval,
	}
}

// ParseConfig decodes TOML on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.PadRepeatDelay < 0 || cfg.PadRepeatInterval < 0 {
		return Config{}, fmt.Errorf("parse config: negative pad repeat timing")
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
