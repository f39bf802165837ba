// Package registry records which navigation destinations the launcher can
// resolve. The router consults it to decide whether a dispatched route leads
// somewhere or falls through to the not-found screen.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/kids-arcade/internal/route"
)

// Kind classifies a destination so the host knows which screen to build.
type Kind int

const (
	KindHome  Kind = iota // Welcome screen
	KindMenu              // Games grid
	KindLogin             // Parent or child login flow
	KindGame              // An individual mini-game
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindMenu:
		return "menu"
	case KindLogin:
		return "login"
	case KindGame:
		return "game"
	default:
		return "unknown"
	}
}

// Destination describes a registered navigation target.
type Destination struct {
	Route route.Route
	Title string
	Kind  Kind
}

// Registry is a set of destinations keyed by route. Safe for concurrent use,
// since one registry is shared by every SSH session.
type Registry struct {
	mu    sync.RWMutex
	dests map[route.Route]Destination
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{dests: make(map[route.Route]Destination)}
}

// Register adds a destination.
// Panics if the route is invalid or already registered.
func (r *Registry) Register(d Destination) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !d.Route.Valid() {
		panic(fmt.Sprintf("registry: invalid route %d", int(d.Route)))
	}
	if _, exists := r.dests[d.Route]; exists {
		panic(fmt.Sprintf("registry: route %q already registered", d.Route))
	}

	r.dests[d.Route] = d
}

// Lookup returns the destination for rt.
// Returns an error if nothing is registered for it.
func (r *Registry) Lookup(rt route.Route) (Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dests[rt]
	if !ok {
		return Destination{}, fmt.Errorf("registry: unknown destination %q", rt)
	}
	return d, nil
}

// Exists checks if a destination is registered for rt.
func (r *Registry) Exists(rt route.Route) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.dests[rt]
	return ok
}

// List returns all registered destinations, sorted by route token.
func (r *Registry) List() []Destination {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Destination, 0, len(r.dests))
	for _, d := range r.dests {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Route.String() < result[j].Route.String()
	})

	return result
}

// titles holds display titles for the non-game destinations.
var titles = map[route.Route]string{
	route.Welcome:     "Welcome",
	route.GameMenu:    "Games",
	route.ParentLogin: "Parent Login",
	route.ChildLogin:  "Child Login",
}

// Default returns a registry with every route the launcher knows about.
// gameTitle supplies titles for game routes; nil falls back to the route token.
func Default(gameTitle func(route.Route) string) *Registry {
	reg := New()
	for _, rt := range route.All() {
		d := Destination{Route: rt, Title: titles[rt]}
		switch {
		case rt == route.Welcome:
			d.Kind = KindHome
		case rt == route.GameMenu:
			d.Kind = KindMenu
		case rt == route.ParentLogin || rt == route.ChildLogin:
			d.Kind = KindLogin
		case rt.IsGame():
			d.Kind = KindGame
			if gameTitle != nil {
				d.Title = gameTitle(rt)
			}
		}
		if d.Title == "" {
			d.Title = rt.String()
		}
		reg.Register(d)
	}
	return reg
}
