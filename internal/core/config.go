// Package core holds the small vocabulary shared by the launcher packages:
// colors, semantic input actions and the per-session runtime config.
package core

// RuntimeConfig contains per-session settings handed to the UI host.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	SessionID string // Identifies the session in launch history
	User      string // Display name of the connected user, if known
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
