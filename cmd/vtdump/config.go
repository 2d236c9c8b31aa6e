package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

type Config struct {
	Core CoreConfig `toml:"core"`
	View ViewConfig `toml:"view"`
}

type CoreConfig struct {
	Format   string `toml:"format"`
	Color    string `toml:"color"` // "auto", "always" or "never"
	MaxBytes int64  `toml:"max_bytes"`
}

type ViewConfig struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			Format:   "text",
			Color:    "auto",
			MaxBytes: 0,
		},
		View: ViewConfig{
			Cols: 0, // 0 means use the terminal size
			Rows: 0,
		},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	return config, nil
}

// configPath returns the --config override or the XDG default.
func configPath(config *AppConfig) string {
	if config.configPath != "" {
		return config.configPath
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// resolveMaxBytes prefers the flag over the config file.
func resolveMaxBytes(cfg *Config, config *AppConfig) int64 {
	if config.maxBytes > 0 {
		return config.maxBytes
	}
	return cfg.Core.MaxBytes
}
