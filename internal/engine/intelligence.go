package engine

import (
	"fmt"
	"strings"

	"boardroom/internal/memory"
)

// DefaultQueryLimit is the per-source result cap when the caller passes no
// limit.
const DefaultQueryLimit = 10

// QueryIntelligence searches the session ledger and wisdom list for the
// query, returning ranked session matches and filtered wisdom entries.
func (e *Engine) QueryIntelligence(query string, limit int) (string, error) {
	query, err := validateInput(query, "query")
	if err != nil {
		return "", err
	}
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	keywords, allFiltered := memory.ExtractKeywords(query)

	var b strings.Builder
	fmt.Fprintf(&b, "# Intelligence Query Results\n\n")
	fmt.Fprintf(&b, "**Query:** %q\n", query)

	// Every token was too short to search with — explain the empty result
	// rather than silently returning nothing.
	if allFiltered {
		b.WriteString("\n⚠️ **All query words were too short to search** (fewer than 3 characters).\n")
		b.WriteString("Try a more specific query with longer terms.")
		return b.String(), nil
	}

	sessions := memory.SearchSessions(e.readLedger(), keywords, limit)
	principles := memory.SearchPrinciples(e.readWisdom(), keywords, limit)

	fmt.Fprintf(&b, "**Keywords:** %s\n\n", strings.Join(keywords, ", "))

	fmt.Fprintf(&b, "## Ledger Matches (%d)\n", len(sessions))
	if len(sessions) > 0 {
		for i, s := range sessions {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "### %s\n%s...", s.Title, s.Excerpt)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("_No matching ledger entries. The ledger grows with every `report_outcome` call._\n")
	}

	fmt.Fprintf(&b, "\n## Wisdom Matches (%d)\n", len(principles))
	if len(principles) > 0 {
		b.WriteString(strings.Join(principles, "\n"))
	} else {
		b.WriteString("_No matching wisdom entries._")
	}
	return b.String(), nil
}
