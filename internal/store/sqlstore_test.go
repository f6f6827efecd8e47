package store_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"boardroom/internal/store"
)

func entry(i int) store.OutcomeEntry {
	return store.OutcomeEntry{
		ID:         fmt.Sprintf("id-%03d", i),
		Task:       fmt.Sprintf("task %d", i),
		Outcome:    "shipped",
		Entity:     "VendorA",
		Followed:   true,
		Positive:   i%2 == 0,
		ReportedAt: fmt.Sprintf("2026-09-01T10:%02d:00Z", i),
	}
}

func testStore(t *testing.T, s store.Store) {
	t.Helper()
	for i := 0; i < 5; i++ {
		if err := s.AddOutcome(entry(i)); err != nil {
			t.Fatalf("AddOutcome(%d): %v", i, err)
		}
	}

	n, err := s.CountOutcomes()
	if err != nil || n != 5 {
		t.Fatalf("CountOutcomes = (%d, %v), want 5", n, err)
	}

	recent, err := s.RecentOutcomes(2)
	if err != nil {
		t.Fatalf("RecentOutcomes: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d entries, want 2", len(recent))
	}
	if recent[0].ID != "id-004" || recent[1].ID != "id-003" {
		t.Errorf("recent order = %s, %s; want id-004, id-003", recent[0].ID, recent[1].ID)
	}
	if !recent[0].Positive || !recent[0].Followed {
		t.Errorf("flags lost on round-trip: %+v", recent[0])
	}
}

func TestSqlStore(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "nested", "boardroom.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestMemStore(t *testing.T) {
	testStore(t, store.NewMemStore())
}

func TestSqlStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boardroom.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.AddOutcome(entry(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	n, err := s2.CountOutcomes()
	if err != nil || n != 1 {
		t.Errorf("after reopen CountOutcomes = (%d, %v), want 1", n, err)
	}
}
