package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/i18n"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher at the welcome screen",
	Long: `Start the launcher in the terminal.

The welcome screen offers two buttons: one for parents and one for kids.
After logging in, pick a game from the two-column grid.

Controls:
  Arrows/hjkl  - Move focus
  Tab          - Next tile or button
  Enter/Space  - Open
  1/2          - Parent/kid button on the welcome screen
  Esc/B        - Back
  Q            - Quit

Examples:
  arcade menu
  arcade menu --locale es
  arcade menu --db ./launcher.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runLauncher("")
}

// runLauncher starts the local launcher, dispatching open first if set.
func runLauncher(open string) {
	cfg := loadConfig()

	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open launch history
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open launch history: %v\n", err)
		logger.Warn("launch history unavailable", "path", cfg.Storage.Path, "error", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	user := os.Getenv("USER")
	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		SessionID: uuid.NewString(),
		User:      user,
	}

	theme := tui.NewTheme(nil, cfg.Theme)
	logger.Info("launcher started", "session", rc.SessionID, "user", user, "locale", tr.Tag())

	runErr := tui.RunApp(tui.AppOptions{
		Store:      store,
		Translator: tr,
		Theme:      &theme,
		Logger:     logger,
		Config:     rc,
		Open:       open,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("launcher failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running launcher: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("launcher stopped", "session", rc.SessionID)
}
