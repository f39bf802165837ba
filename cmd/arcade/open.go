package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/route"
)

var flagAllowUnknown bool

var openCmd = &cobra.Command{
	Use:   "open <route>",
	Short: "Start the launcher and open a route",
	Long: `Start the launcher at the welcome screen and immediately dispatch the
given route, as if it had been picked. Esc goes back along the usual history.

Routes are the tokens shown by 'arcade routes', for example:
  welcome, games, parentLogin, childLogin, game/snake

Examples:
  arcade open games
  arcade open game/piano
  arcade open game/pong --allow-unknown`,
	Args: cobra.ExactArgs(1),
	Run:  runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&flagAllowUnknown, "allow-unknown", false, "Open unknown routes (shows the not-found screen)")
}

func runOpen(_ *cobra.Command, args []string) {
	token := args[0]

	// Check if route exists
	if _, err := route.Parse(token); err != nil && !flagAllowUnknown {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade routes' to see available routes.")
		os.Exit(1)
	}

	runLauncher(token)
}
