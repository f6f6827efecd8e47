package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultDBPath is the default relative path for the SQLite index.
// Resolved against the boardroom root by the workspace layer.
const DefaultDBPath = "boardroom.db"

var schema = strings.TrimSpace(`
CREATE TABLE IF NOT EXISTS outcomes (
	id TEXT PRIMARY KEY,
	task TEXT NOT NULL,
	outcome TEXT NOT NULL,
	entity TEXT,
	followed INTEGER NOT NULL,
	positive INTEGER NOT NULL,
	reported_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_outcomes_reported_at ON outcomes(reported_at);
`)

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates the SQLite index at path, creating the parent
// directory and schema as needed.
func Open(path string) (*SqlStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SqlStore{db: db}, nil
}

func (s *SqlStore) AddOutcome(e OutcomeEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO outcomes (id, task, outcome, entity, followed, positive, reported_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Task, e.Outcome, e.Entity, boolToInt(e.Followed), boolToInt(e.Positive), e.ReportedAt,
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

func (s *SqlStore) RecentOutcomes(limit int) ([]OutcomeEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, task, outcome, COALESCE(entity, ''), followed, positive, reported_at
		 FROM outcomes ORDER BY reported_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeEntry
	for rows.Next() {
		var e OutcomeEntry
		var followed, positive int
		if err := rows.Scan(&e.ID, &e.Task, &e.Outcome, &e.Entity, &followed, &positive, &e.ReportedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		e.Followed = followed != 0
		e.Positive = positive != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SqlStore) CountOutcomes() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM outcomes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count outcomes: %w", err)
	}
	return n, nil
}

func (s *SqlStore) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
