package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Locale: "en",
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/arcade.log",
		},
		Storage: StorageConfig{
			Path: "~/.arcade/launcher.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: ThemeConfig{
			Title:    "212",
			Subtitle: "245",
			Focus:    "205",
			Muted:    "240",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
