package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveVisit(t *testing.T) {
	store := openTestStore(t)

	id1, err := store.SaveVisit("s1", "game/snake", true)
	if err != nil {
		t.Fatalf("SaveVisit() failed: %v", err)
	}
	id2, err := store.SaveVisit("s1", "game/snake", true)
	if err != nil {
		t.Fatalf("SaveVisit() failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("IDs should increase: %d then %d", id1, id2)
	}

	n, err := store.VisitCount("game/snake")
	if err != nil {
		t.Fatalf("VisitCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("VisitCount() = %d, expected 2", n)
	}

	n, err = store.VisitCount("game/piano")
	if err != nil {
		t.Fatalf("VisitCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("VisitCount() for unvisited route = %d, expected 0", n)
	}
}

func TestStoreVisitCounts(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []string{"game/piano", "game/snake", "game/snake", "game/snake", "games", "games"} {
		if _, err := store.SaveVisit("s", r, true); err != nil {
			t.Fatalf("SaveVisit() failed: %v", err)
		}
	}

	counts, err := store.VisitCounts()
	if err != nil {
		t.Fatalf("VisitCounts() failed: %v", err)
	}

	want := []RouteCount{{Route: "game/snake", Count: 3}, {Route: "games", Count: 2}, {Route: "game/piano", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("VisitCounts() returned %d rows, expected %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i].Route != want[i].Route || counts[i].Count != want[i].Count {
			t.Errorf("row %d = %s:%d, expected %s:%d", i, counts[i].Route, counts[i].Count, want[i].Route, want[i].Count)
		}
	}
}

func TestStoreRecentVisits(t *testing.T) {
	store := openTestStore(t)

	store.SaveVisit("a", "welcome", true)
	store.SaveVisit("a", "game/pong", false)
	store.SaveVisit("b", "game/sudoku", true)

	visits, err := store.RecentVisits(2)
	if err != nil {
		t.Fatalf("RecentVisits() failed: %v", err)
	}
	if len(visits) != 2 {
		t.Fatalf("RecentVisits(2) returned %d rows", len(visits))
	}
	if visits[0].Route != "game/sudoku" || visits[0].SessionID != "b" {
		t.Errorf("newest visit = %+v", visits[0])
	}
	if visits[1].Route != "game/pong" || visits[1].Resolved {
		t.Errorf("second visit = %+v, expected unresolved game/pong", visits[1])
	}
}

func TestStoreClearVisits(t *testing.T) {
	store := openTestStore(t)

	store.SaveVisit("a", "games", true)
	if err := store.ClearVisits(); err != nil {
		t.Fatalf("ClearVisits() failed: %v", err)
	}

	visits, err := store.RecentVisits(10)
	if err != nil {
		t.Fatalf("RecentVisits() failed: %v", err)
	}
	if len(visits) != 0 {
		t.Errorf("expected no visits after clear, got %d", len(visits))
	}
}
