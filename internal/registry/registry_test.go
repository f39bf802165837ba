package registry

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/route"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := New()
	reg.Register(Destination{Route: route.Snake, Title: "Snake", Kind: KindGame})

	d, err := reg.Lookup(route.Snake)
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if d.Title != "Snake" || d.Kind != KindGame {
		t.Errorf("Lookup() = %+v", d)
	}

	if _, err := reg.Lookup(route.Piano); err == nil {
		t.Error("Lookup() of unregistered route should fail")
	}
	if reg.Exists(route.Piano) {
		t.Error("Exists() should be false for unregistered route")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := New()
	reg.Register(Destination{Route: route.Snake})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	reg.Register(Destination{Route: route.Snake})
}

func TestRegisterInvalidPanics(t *testing.T) {
	reg := New()

	defer func() {
		if recover() == nil {
			t.Error("Register() with invalid route should panic")
		}
	}()
	reg.Register(Destination{Route: route.None})
}

func TestDefault(t *testing.T) {
	reg := Default(func(rt route.Route) string {
		if rt == route.Snake {
			return "Snake"
		}
		return ""
	})

	if got, want := len(reg.List()), len(route.All()); got != want {
		t.Fatalf("Default() registered %d destinations, expected %d", got, want)
	}

	tests := []struct {
		route route.Route
		kind  Kind
		title string
	}{
		{route.Welcome, KindHome, "Welcome"},
		{route.GameMenu, KindMenu, "Games"},
		{route.ParentLogin, KindLogin, "Parent Login"},
		{route.ChildLogin, KindLogin, "Child Login"},
		{route.Snake, KindGame, "Snake"},
		{route.Piano, KindGame, "game/piano"},
	}

	for _, tt := range tests {
		d, err := reg.Lookup(tt.route)
		if err != nil {
			t.Errorf("Lookup(%v) failed: %v", tt.route, err)
			continue
		}
		if d.Kind != tt.kind {
			t.Errorf("%v kind = %v, expected %v", tt.route, d.Kind, tt.kind)
		}
		if d.Title != tt.title {
			t.Errorf("%v title = %q, expected %q", tt.route, d.Title, tt.title)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := Default(nil).List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Route.String() > list[i].Route.String() {
			t.Errorf("List() not sorted at %d: %q > %q", i, list[i-1].Route, list[i].Route)
		}
	}
}
