package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	data := []byte("locale: es\nssh:\n  address: \":2222\"\n  idle_timeout: 5m\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Locale != "es" {
		t.Errorf("Locale = %q, expected es", cfg.Locale)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("SSH.Address = %q", cfg.SSH.Address)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("SSH.IdleTimeout = %v", cfg.SSH.IdleTimeout)
	}
	// Unset keys keep defaults
	if cfg.Storage.Path != DefaultConfig().Storage.Path {
		t.Errorf("Storage.Path = %q, expected default", cfg.Storage.Path)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing custom file should fail")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("locale: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad locale", func(c *Config) { c.Locale = "not a tag!" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"negative timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }, false},
		{"bad color", func(c *Config) { c.Theme.Focus = "pink" }, false},
		{"color out of range", func(c *Config) { c.Theme.Title = "300" }, false},
		{"empty color", func(c *Config) { c.Theme.Muted = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	cfg.Log.Level = ""
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() for empty = %v", cfg.LogLevel())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/.arcade/x.db"); got != filepath.Join(home, ".arcade", "x.db") {
		t.Errorf("ExpandPath() = %q", got)
	}
	if got := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandPath() changed absolute path: %q", got)
	}
}
