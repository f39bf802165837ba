// Package config provides YAML-based configuration loading for the launcher.
package config

import (
	"errors"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all launcher settings.
type Config struct {
	Locale  string        `yaml:"locale"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by local runs; SSH server logs to stderr
}

// StorageConfig defines where launch history is kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig defines SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.arcade/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig holds ANSI 256 color codes for the shared screen chrome.
// Tile accents come from the game catalog.
type ThemeConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Focus    string `yaml:"focus"`
	Muted    string `yaml:"muted"`
}
