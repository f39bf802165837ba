// Package catalog provides the fixed, ordered list of mini-games shown in the
// games menu. Catalogs are validated when built and never change afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

// Validation errors returned by New.
var (
	ErrEmptyLabel     = errors.New("catalog: empty label")
	ErrEmptyIcon      = errors.New("catalog: empty icon")
	ErrInvalidRoute   = errors.New("catalog: invalid route")
	ErrDuplicateRoute = errors.New("catalog: duplicate route")
)

// Icon is a symbolic glyph identifier. The presenter decides how to draw it.
type Icon string

// MenuItem is a single selectable entry in the games menu.
type MenuItem struct {
	Label  string
	Icon   Icon
	Route  route.Route
	Accent core.Color
}

// MessageID returns the translation key for the item's label.
func (i MenuItem) MessageID() string {
	return strings.ReplaceAll(i.Route.String(), "/", "_")
}

// Translator looks up a localized string, returning fallback when the id is missing.
type Translator interface {
	Translate(id, fallback string) string
}

// Catalog is an immutable ordered list of menu items with unique routes.
type Catalog struct {
	items []MenuItem
}

// New validates items and builds a catalog preserving their order.
func New(items ...MenuItem) (*Catalog, error) {
	seen := make(map[route.Route]int, len(items))
	out := make([]MenuItem, 0, len(items))

	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyLabel, i)
		}
		if strings.TrimSpace(string(item.Icon)) == "" {
			return nil, fmt.Errorf("%w for %q", ErrEmptyIcon, item.Label)
		}
		if !item.Route.Valid() {
			return nil, fmt.Errorf("%w for %q", ErrInvalidRoute, item.Label)
		}
		if prev, dup := seen[item.Route]; dup {
			return nil, fmt.Errorf("%w %q at index %d and %d", ErrDuplicateRoute, item.Route, prev, i)
		}
		seen[item.Route] = i
		out = append(out, item)
	}

	return &Catalog{items: out}, nil
}

// Items returns a copy of the catalog entries in order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the entry at index i. Panics if i is out of range.
func (c *Catalog) At(i int) MenuItem {
	return c.items[i]
}

// Find returns the entry for r, if the catalog contains it.
func (c *Catalog) Find(r route.Route) (MenuItem, bool) {
	for _, item := range c.items {
		if item.Route == r {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Localize returns a new catalog whose labels are translated by tr.
// Untranslated labels keep their original text.
func (c *Catalog) Localize(tr Translator) *Catalog {
	out := make([]MenuItem, len(c.items))
	for i, item := range c.items {
		if label := tr.Translate(item.MessageID(), item.Label); strings.TrimSpace(label) != "" {
			item.Label = label
		}
		out[i] = item
	}
	return &Catalog{items: out}
}
