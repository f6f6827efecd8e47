package engine

import (
	"context"
	"fmt"
	"strings"

	"boardroom/internal/store"
	"boardroom/internal/trust"
	"boardroom/internal/workspace"

	"github.com/google/uuid"
)

// ReportOutcome appends an outcome section to the session ledger, records
// it in the outcome index, and, when an entity is named, updates its trust
// profile. A failed ledger write does not abort the call: the constructed
// record is still returned with a "not persisted" notice so nothing is
// silently lost.
func (e *Engine) ReportOutcome(ctx context.Context, task, outcome string, followedRecommendation bool, entity string) (string, error) {
	task, err := validateInput(task, "task")
	if err != nil {
		return "", err
	}
	if outcome, err = validateInput(outcome, "outcome"); err != nil {
		return "", err
	}
	if entity, err = validateInput(entity, "entity"); err != nil {
		return "", err
	}

	timestamp := e.timestamp()
	marker := "✅"
	if !followedRecommendation {
		marker = "⚠️"
	}

	var entry strings.Builder
	fmt.Fprintf(&entry, "\n## %s Outcome Report — %s\n\n", marker, timestamp)
	fmt.Fprintf(&entry, "**Task:** %s\n", task)
	fmt.Fprintf(&entry, "**Outcome:** %s\n", outcome)
	fmt.Fprintf(&entry, "**Followed Recommendation:** %s\n", yesNo(followedRecommendation))
	if entity != "" {
		fmt.Fprintf(&entry, "**Entity:** %s\n", entity)
	}
	fmt.Fprintf(&entry, "**Timestamp:** %s\n\n---\n", timestamp)

	persistErr := workspace.AppendSection(e.ws.LedgerPath, entry.String())
	if persistErr != nil {
		e.log.Warn("ledger append failed", "path", e.ws.LedgerPath, "error", persistErr)
	}

	positive := trust.PositiveOutcome(outcome, followedRecommendation)
	if err := e.index.AddOutcome(store.OutcomeEntry{
		ID:         uuid.NewString(),
		Task:       task,
		Outcome:    outcome,
		Entity:     entity,
		Followed:   followedRecommendation,
		Positive:   positive,
		ReportedAt: timestamp,
	}); err != nil {
		// Index writes are best-effort; the Markdown ledger is the record.
		e.log.Warn("outcome index write failed", "error", err)
	}

	var trustResult trust.UpdateResult
	if entity != "" {
		trustResult = e.ledger.Update(entity, positive)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Outcome Recorded\n\n")
	if persistErr == nil {
		fmt.Fprintf(&b, "%s Decision outcome has been logged to the ledger.\n\n", marker)
	} else {
		fmt.Fprintf(&b, "⚠️ Decision outcome was captured but **could not be written to disk** (%v). ", persistErr)
		fmt.Fprintf(&b, "The ledger at `%s` may not be writable; the outcome below will not persist across sessions.\n\n", e.ws.LedgerPath)
	}
	fmt.Fprintf(&b, "**Task:** %s\n", task)
	fmt.Fprintf(&b, "**Outcome:** %s\n", outcome)
	fmt.Fprintf(&b, "**Followed Recommendation:** %s\n", yesNo(followedRecommendation))
	fmt.Fprintf(&b, "**Logged At:** %s\n", timestamp)
	fmt.Fprintf(&b, "**Persisted:** %s\n", yesNo(persistErr == nil))

	if entity != "" {
		b.WriteString("\n## Trust Update\n")
		if trustResult.Updated {
			fmt.Fprintf(&b, "✅ Trust profile for **%s** has been updated. Use `trust_lookup(%q)` to see the current profile.\n", entity, entity)
		} else {
			fmt.Fprintf(&b, "⚠️ Trust profile for **%s** could not be updated (%s).\n", entity, trustResult.Err)
		}
	}

	b.WriteString("\nUse `query_intelligence` to search past outcomes as precedents.")
	return b.String(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
