package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

func TestGamesNonEmpty(t *testing.T) {
	c := Games()

	if c.Len() != 10 {
		t.Fatalf("Games() has %d items, expected 10", c.Len())
	}

	for i, item := range c.Items() {
		if strings.TrimSpace(item.Label) == "" {
			t.Errorf("item %d has empty label", i)
		}
		if item.Route.String() == "" {
			t.Errorf("item %d (%s) has empty route", i, item.Label)
		}
		if !item.Route.IsGame() {
			t.Errorf("item %d (%s) route %v is not a game", i, item.Label, item.Route)
		}
	}
}

func TestGamesDeterministic(t *testing.T) {
	first := Games().Items()

	for n := 0; n < 5; n++ {
		again := Games().Items()
		if len(again) != len(first) {
			t.Fatalf("call %d: length %d, expected %d", n, len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Errorf("call %d: item %d = %+v, expected %+v", n, i, again[i], first[i])
			}
		}
	}
}

func TestGamesUniqueRoutes(t *testing.T) {
	seen := make(map[string]string)
	for _, item := range Games().Items() {
		token := item.Route.String()
		if other, ok := seen[token]; ok {
			t.Errorf("route %q shared by %q and %q", token, other, item.Label)
		}
		seen[token] = item.Label
	}
}

func TestGamesOrder(t *testing.T) {
	want := []string{
		"game/memory_cards",
		"game/sudoku",
		"game/puzzle",
		"game/tictactoe",
		"game/drawing",
		"game/word_guess",
		"game/snake",
		"game/piano",
		"game/math_dash",
		"game/whack_a_mole",
	}

	items := Games().Items()
	for i, token := range want {
		if items[i].Route.String() != token {
			t.Errorf("item %d route = %q, expected %q", i, items[i].Route.String(), token)
		}
	}
}

func TestNewValidation(t *testing.T) {
	ok := MenuItem{Label: "Snake", Icon: IconSnake, Route: route.Snake, Accent: core.ColorGreen}

	tests := []struct {
		name  string
		items []MenuItem
		want  error
	}{
		{"empty label", []MenuItem{{Label: "  ", Icon: IconSnake, Route: route.Snake}}, ErrEmptyLabel},
		{"empty icon", []MenuItem{{Label: "Snake", Route: route.Snake}}, ErrEmptyIcon},
		{"no route", []MenuItem{{Label: "Snake", Icon: IconSnake}}, ErrInvalidRoute},
		{"out of range route", []MenuItem{{Label: "Snake", Icon: IconSnake, Route: route.Route(500)}}, ErrInvalidRoute},
		{"duplicate route", []MenuItem{ok, {Label: "Snake 2", Icon: IconSnake, Route: route.Snake}}, ErrDuplicateRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.items...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, expected %v", err, tt.want)
			}
			if c != nil {
				t.Error("New() should return nil catalog on error")
			}
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := Games()
	items := c.Items()
	items[0].Label = "Changed"
	items[0].Route = route.Piano

	if c.At(0).Label != "Memory Cards" {
		t.Errorf("catalog mutated through Items(): %q", c.At(0).Label)
	}
	if c.At(0).Route != route.MemoryCards {
		t.Errorf("catalog route mutated through Items(): %v", c.At(0).Route)
	}
}

func TestFind(t *testing.T) {
	c := Games()

	item, ok := c.Find(route.MathDash)
	if !ok {
		t.Fatal("Find(MathDash) not found")
	}
	if item.Label != "Math Dash" {
		t.Errorf("Find(MathDash).Label = %q", item.Label)
	}

	if _, ok := c.Find(route.ParentLogin); ok {
		t.Error("Find(ParentLogin) should not be in the games catalog")
	}
}

type mapTranslator map[string]string

func (m mapTranslator) Translate(id, fallback string) string {
	if s, ok := m[id]; ok {
		return s
	}
	return fallback
}

func TestLocalize(t *testing.T) {
	c := Games()
	tr := mapTranslator{"game_snake": "Serpiente", "game_piano": ""}

	loc := c.Localize(tr)

	snake, _ := loc.Find(route.Snake)
	if snake.Label != "Serpiente" {
		t.Errorf("localized snake label = %q", snake.Label)
	}
	piano, _ := loc.Find(route.Piano)
	if piano.Label != "Piano" {
		t.Errorf("empty translation should keep original label, got %q", piano.Label)
	}
	orig, _ := c.Find(route.Snake)
	if orig.Label != "Snake" {
		t.Errorf("Localize mutated the receiver: %q", orig.Label)
	}
	if loc.Len() != c.Len() {
		t.Errorf("localized catalog has %d items, expected %d", loc.Len(), c.Len())
	}
}

func TestMessageID(t *testing.T) {
	item := MenuItem{Route: route.WhackAMole}
	if item.MessageID() != "game_whack_a_mole" {
		t.Errorf("MessageID() = %q", item.MessageID())
	}
}
