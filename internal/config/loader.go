package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Load loads the launcher configuration.
// Search order: customPath -> ~/.arcade/config.yaml -> ./configs/arcade.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandPath(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "arcade.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
		}
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
		}
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative ssh idle_timeout", ErrInvalid)
	}
	for name, code := range map[string]string{
		"title":    c.Theme.Title,
		"subtitle": c.Theme.Subtitle,
		"focus":    c.Theme.Focus,
		"muted":    c.Theme.Muted,
	} {
		if code == "" {
			continue
		}
		if n, err := strconv.Atoi(code); err != nil || n < 0 || n > 255 {
			return fmt.Errorf("%w: theme %s color %q is not an ANSI 256 code", ErrInvalid, name, code)
		}
	}
	return nil
}

// LogLevel returns the configured level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", filename)
}
