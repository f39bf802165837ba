package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each route was opened",
	Long: `Display the launch history: how many times each route was dispatched
and the most recent dispatches.

Examples:
  arcade stats            # Interactive tables
  arcade stats --plain    # Print totals and exit
  arcade stats --clear    # Forget the history`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print totals instead of the interactive view")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded visits")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Open launch history
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening launch history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearVisits(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing launch history: %v\n", err)
			return
		}
		fmt.Println("Launch history cleared.")

	case flagPlain:
		printStats(store)

	default:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunStats(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func printStats(store *storage.Store) {
	counts, err := store.VisitCounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving launch history: %v\n", err)
		return
	}

	fmt.Println("Launch history")
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("Nothing opened yet.")
		fmt.Println()
		fmt.Println("Run 'arcade menu' and pick a game!")
		return
	}

	// Print header
	fmt.Printf("  %-22s  %-6s  %s\n", "Route", "Opened", "Last")
	fmt.Printf("  %-22s  %-6s  %s\n", "-----", "------", "----")

	total := 0
	for _, c := range counts {
		last := "-"
		if !c.Last.IsZero() {
			last = c.Last.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-22s  %-6d  %s\n", c.Route, c.Count, last)
		total += c.Count
	}

	fmt.Println()
	fmt.Printf("Total: %d\n", total)
}
