package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/catalog"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every navigation route",
	Long:  `Shows every route the launcher can dispatch and the screen it opens.`,
	Run:   runRoutes,
}

func runRoutes(_ *cobra.Command, _ []string) {
	games := catalog.Games()
	reg := registry.Default(func(rt route.Route) string {
		item, _ := games.Find(rt)
		return item.Label
	})

	dests := reg.List()

	maxLen := len("Route")
	for _, d := range dests {
		if n := len(d.Route.String()); n > maxLen {
			maxLen = n
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxLen, "Route", "Kind", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxLen, "-----", "----", "-----")
	for _, d := range dests {
		fmt.Printf("  %-*s  %-6s  %s\n", maxLen, d.Route, d.Kind, d.Title)
	}
}
