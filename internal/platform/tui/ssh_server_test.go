package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "launcher.db")
	cfg.IdleTimeout = time.Minute
	cfg.LogLevel = log.ErrorLevel

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, expected 0", srv.ActiveSessions())
	}
	if _, err := os.Stat(filepath.Join(dir, "keys")); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
	if srv.store == nil {
		t.Error("launch history should be open")
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestNewSSHServerBadLocale(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Locale = "not a locale!"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected error for invalid locale")
	}
}
