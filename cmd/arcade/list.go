package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/i18n"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games in the menu",
	Long:  `Shows the games menu in display order, two per row as on screen.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	games := catalog.Games().Localize(tr).Items()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxRouteLen := len("Route")
	for _, g := range games {
		if n := len(g.Route.String()); n > maxRouteLen {
			maxRouteLen = n
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-4s  %s\n", "#", maxRouteLen, "Route", "Icon", "Title")
	fmt.Printf("  %-3s  %-*s  %-4s  %s\n", "-", maxRouteLen, "-----", "----", "-----")

	// Print games
	for i, g := range games {
		fmt.Printf("  %-3d  %-*s  %-4s  %s\n", i+1, maxRouteLen, g.Route, tui.Glyph(g.Icon), g.Label)
	}

	fmt.Println()
	fmt.Println("Run 'arcade open <route>' to open a game.")
}
