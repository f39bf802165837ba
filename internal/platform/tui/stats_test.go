package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/kids-arcade/internal/storage"
)

type fakeSource struct {
	counts []storage.RouteCount
	recent []storage.Visit
	err    error
}

func (f fakeSource) VisitCounts() ([]storage.RouteCount, error) {
	return f.counts, f.err
}

func (f fakeSource) RecentVisits(limit int) ([]storage.Visit, error) {
	return f.recent, f.err
}

func TestStatsModelViews(t *testing.T) {
	now := time.Now()
	src := fakeSource{
		counts: []storage.RouteCount{
			{Route: "game/snake", Count: 3, Last: now},
			{Route: "games", Count: 1, Last: now},
		},
		recent: []storage.Visit{
			{ID: 2, SessionID: "0123456789", Route: "game/snake", Resolved: true, CreatedAt: now},
			{ID: 1, SessionID: "abc", Route: "game/pong", Resolved: false, CreatedAt: now},
		},
	}

	m := NewStatsModel(src, 100, 30)
	if m.CurrentView() != StatsViewTotals {
		t.Fatalf("CurrentView() = %v, expected totals", m.CurrentView())
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("totals rows = %d, expected 2", got)
	}

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(StatsModel)
	if m.CurrentView() != StatsViewRecent {
		t.Fatalf("CurrentView() = %v, expected recent", m.CurrentView())
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("recent rows = %d, expected 2", len(rows))
	}
	if rows[0][3] != "01234567" {
		t.Errorf("session column = %q, expected shortened id", rows[0][3])
	}
	if rows[1][2] != "no" {
		t.Errorf("resolved column = %q, expected no", rows[1][2])
	}
}

func TestStatsModelMessages(t *testing.T) {
	tests := []struct {
		name string
		src  VisitSource
		want string
	}{
		{"nil source", nil, "unavailable"},
		{"empty", fakeSource{}, "Nothing opened yet"},
		{"error", fakeSource{err: errors.New("disk on fire")}, "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStatsModel(tt.src, 100, 30)
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() missing %q", tt.want)
			}
		})
	}
}

func TestStatsModelQuit(t *testing.T) {
	m := NewStatsModel(fakeSource{}, 80, 24)
	_, cmd := m.Update(keyMsg("esc"))
	if !isQuit(cmd) {
		t.Error("esc should quit the stats screen")
	}
}

func TestFormatHelpers(t *testing.T) {
	if formatWhen(time.Time{}) != "-" {
		t.Error("zero time should format as -")
	}
	if shortID("") != "-" {
		t.Error("empty id should format as -")
	}
	if shortID("abc") != "abc" {
		t.Error("short id should be unchanged")
	}
}
