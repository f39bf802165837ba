// arcade is the Kids Arcade launcher: a welcome screen and a grid of offline
// mini-games, run in the terminal or served over SSH.
//
// Usage:
//
//	arcade menu              - Start the launcher at the welcome screen
//	arcade open <route>      - Start the launcher and open a route
//	arcade list              - List the games in the menu
//	arcade routes            - List every navigation route
//	arcade serve             - Start SSH server for remote sessions
//	arcade stats             - Show how often each route was opened
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Launch history database (overrides storage.path)
//	--locale <code>  - UI language, e.g. en or es (overrides locale)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagLocale string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Kids Arcade - offline mini-games launcher",
	Long: `Kids Arcade is a terminal launcher for a collection of offline
mini-games for kids.

Available commands:
  menu     - Start at the welcome screen
  open     - Start and jump straight to a route
  list     - Show the games in the menu
  routes   - Show every navigation route
  serve    - Start SSH server for remote sessions
  stats    - View launch history

Examples:
  arcade menu
  arcade open game/snake
  arcade menu --locale es
  arcade serve --ssh :2222
  arcade stats --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to launch history database")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "UI language (en, es)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	return cfg
}

// fileLogger returns a logger writing to the configured log file, so log
// output never lands on the alt screen. The returned func closes the file.
func fileLogger(cfg config.Config) (*log.Logger, func()) {
	path := config.ExpandPath(cfg.Log.File)
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           cfg.LogLevel(),
	})
	return logger, func() { _ = f.Close() }
}
