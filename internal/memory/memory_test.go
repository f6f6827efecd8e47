package memory_test

import (
	"fmt"
	"strings"
	"testing"

	"boardroom/internal/memory"

	"github.com/google/go-cmp/cmp"
)

const sampleLedger = `# Decision Ledger

Preamble text mentioning pricing — never searched.

## Pricing tier experiment — 2026-03-01

We tested a new pricing tier for the launch.
Outcome: conversion up 4%.

## Deploy pipeline rework — 2026-04-12

Moved the deploy pipeline to staged rollouts.
Outcome: fewer incidents.

## Vendor review — 2026-05-20

Reviewed vendor pricing and deploy cadence for the platform migration.
`

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		want         []string
		wantFiltered bool
	}{
		{"normal query", "Pricing Strategy", []string{"pricing", "strategy"}, false},
		{"short tokens dropped", "go to the db", []string{"the"}, false},
		{"all filtered", "a of to", nil, true},
		{"empty query", "", nil, false},
		{"whitespace only", "   ", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, filtered := memory.ExtractKeywords(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("keywords mismatch:\n%s", diff)
			}
			if filtered != tt.wantFiltered {
				t.Errorf("allFiltered = %v, want %v", filtered, tt.wantFiltered)
			}
		})
	}
}

func TestSearchSessions_RankingAndTies(t *testing.T) {
	got := memory.SearchSessions(sampleLedger, []string{"pricing", "deploy"}, 10)

	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	// Vendor review matches both keywords; the two single-keyword sections
	// keep document order.
	if !strings.HasPrefix(got[0].Title, "Vendor review") || got[0].Score != 2 {
		t.Errorf("top match = %q (score %d), want Vendor review with score 2", got[0].Title, got[0].Score)
	}
	if !strings.HasPrefix(got[1].Title, "Pricing tier experiment") {
		t.Errorf("tie order broken: second = %q", got[1].Title)
	}
	if !strings.HasPrefix(got[2].Title, "Deploy pipeline rework") {
		t.Errorf("tie order broken: third = %q", got[2].Title)
	}
}

func TestSearchSessions_PreambleSkipped(t *testing.T) {
	got := memory.SearchSessions(sampleLedger, []string{"preamble"}, 10)
	if len(got) != 0 {
		t.Errorf("preamble must not be searchable, got %d matches", len(got))
	}
}

func TestSearchSessions_LimitIsHardCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "## Session %d\ndeploy notes\n\n", i)
	}
	for _, limit := range []int{1, 5, 19} {
		got := memory.SearchSessions(b.String(), []string{"deploy"}, limit)
		if len(got) != limit {
			t.Errorf("limit %d: got %d results", limit, len(got))
		}
	}
}

func TestSearchSessions_ScoreIsDistinctPresence(t *testing.T) {
	ledger := "## Repeats\ndeploy deploy deploy\n\n## Pair\ndeploy pricing\n"
	got := memory.SearchSessions(ledger, []string{"deploy", "deploy", "pricing"}, 10)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	// Presence-only scoring: repetition in the section and in the query
	// must not inflate the score.
	if got[0].Score != 2 || !strings.HasPrefix(got[0].Title, "Pair") {
		t.Errorf("top = %q score %d, want Pair with score 2", got[0].Title, got[0].Score)
	}
	if got[1].Score != 1 {
		t.Errorf("Repeats score = %d, want 1", got[1].Score)
	}
}

func TestSearchSessions_ExcerptBounded(t *testing.T) {
	section := "## Long session\n" + strings.Repeat("deploy and more text ", 100)
	got := memory.SearchSessions(section, []string{"deploy"}, 1)
	if len(got) != 1 {
		t.Fatal("expected one match")
	}
	if len(got[0].Excerpt) > memory.ExcerptLength {
		t.Errorf("excerpt length %d exceeds bound %d", len(got[0].Excerpt), memory.ExcerptLength)
	}
}

func TestSearchSessions_UntitledSection(t *testing.T) {
	got := memory.SearchSessions("## \ndeploy here\n", []string{"deploy"}, 5)
	if len(got) != 1 || got[0].Title != "Untitled" {
		t.Errorf("got %+v, want single Untitled match", got)
	}
}

func TestSearchSessions_EmptyCorpus(t *testing.T) {
	if got := memory.SearchSessions("", []string{"deploy"}, 5); got != nil {
		t.Errorf("empty corpus should give no results, got %v", got)
	}
}

func TestSearchPrinciples(t *testing.T) {
	wisdom := strings.Join([]string{
		"# Wisdom",
		"- [pricing] Anchor high, discount rarely.",
		"- *Deploy* on Mondays, never Fridays.",
		"> Trust is built in drops and lost in buckets.",
		"- Ship the deploy checklist first.",
		"- short",
		"plain line about pricing",
	}, "\n")

	got := memory.SearchPrinciples(wisdom, []string{"deploy"}, 10)
	want := []string{
		"- *Deploy* on Mondays, never Fridays.",
		"- Ship the deploy checklist first.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("principle matches mismatch:\n%s", diff)
	}

	// ANY keyword matches, order preserved, limit applied.
	got = memory.SearchPrinciples(wisdom, []string{"pricing", "trust"}, 1)
	want = []string{"- [pricing] Anchor high, discount rarely."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("limited matches mismatch:\n%s", diff)
	}
}

func TestSearchPrinciples_EmptyCorpus(t *testing.T) {
	if got := memory.SearchPrinciples("", []string{"deploy"}, 5); got != nil {
		t.Errorf("empty corpus should give no results, got %v", got)
	}
}
