// Package storage provides SQLite-based persistence for launch history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for launch history.
type Store struct {
	db *sql.DB
}

// Visit represents a single navigation dispatch.
type Visit struct {
	ID        int64
	SessionID string
	Route     string
	Resolved  bool
	CreatedAt time.Time
}

// RouteCount is the number of dispatches recorded for one route.
type RouteCount struct {
	Route string
	Count int
	Last  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL DEFAULT '',
			route TEXT NOT NULL,
			resolved INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_visits_route ON visits(route);
		CREATE INDEX IF NOT EXISTS idx_visits_session ON visits(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveVisit records one dispatch of route.
// Returns the ID of the inserted record.
func (s *Store) SaveVisit(sessionID, route string, resolved bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO visits (session_id, route, resolved) VALUES (?, ?, ?)",
		sessionID, route, resolved,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// VisitCount returns how many times route was dispatched.
func (s *Store) VisitCount(route string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM visits WHERE route = ?", route).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count visits: %w", err)
	}
	return n, nil
}

// VisitCounts returns the per-route totals, most visited first.
// Ties are ordered by route so the output is stable.
func (s *Store) VisitCounts() ([]RouteCount, error) {
	rows, err := s.db.Query(
		`SELECT route, COUNT(*) AS n, MAX(created_at)
		 FROM visits
		 GROUP BY route
		 ORDER BY n DESC, route ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visit counts: %w", err)
	}
	defer rows.Close()

	var counts []RouteCount
	for rows.Next() {
		var c RouteCount
		var last any
		if err := rows.Scan(&c.Route, &c.Count, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Last = parseTime(last)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// RecentVisits retrieves the most recent visits, newest first.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, route, resolved, created_at
		 FROM visits
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var createdAt any
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Route, &v.Resolved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.CreatedAt = parseTime(createdAt)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// ClearVisits deletes the whole launch history.
func (s *Store) ClearVisits() error {
	if _, err := s.db.Exec("DELETE FROM visits"); err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
