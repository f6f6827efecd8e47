// Package store keeps the structured outcome index: one row per reported
// outcome, queryable by recency. The index complements the append-only
// Markdown ledger — the ledger is the record, the index is for counting and
// recent-history lookups. Index writes are best-effort; a failure never
// fails the report that produced the entry.
package store

import "sync"

// OutcomeEntry is one indexed outcome report.
type OutcomeEntry struct {
	ID         string
	Task       string
	Outcome    string
	Entity     string
	Followed   bool
	Positive   bool
	ReportedAt string
}

// Store is the outcome index facade. Implementations are SQLite or
// in-memory.
type Store interface {
	AddOutcome(e OutcomeEntry) error
	RecentOutcomes(limit int) ([]OutcomeEntry, error)
	CountOutcomes() (int, error)
	Close() error
}

// MemStore is the in-memory Store used in tests and as a fallback when the
// SQLite index cannot be opened.
type MemStore struct {
	mu      sync.Mutex
	entries []OutcomeEntry
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) AddOutcome(e OutcomeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemStore) RecentOutcomes(limit int) ([]OutcomeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]OutcomeEntry, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *MemStore) CountOutcomes() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries), nil
}

func (m *MemStore) Close() error { return nil }
