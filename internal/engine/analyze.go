package engine

import (
	"context"
	"fmt"
	"strings"

	"boardroom/internal/advisor"
	"boardroom/internal/classify"
	"boardroom/internal/memory"

	"golang.org/x/sync/errgroup"
)

const (
	// maxAdvisors caps the advisor list in a full analysis.
	maxAdvisors = 8
	// analysisResultLimit bounds precedent and wisdom matches per report.
	analysisResultLimit = 5
	// systemPromptExcerptLength bounds the governance framework excerpt.
	systemPromptExcerptLength = 500
)

// tensionPair returns the opposing-viewpoint prompt for a category.
func tensionPair(category string) string {
	switch category {
	case "strategy":
		return "- **Speed vs. Quality** — Ship fast to capture the market vs. build properly to retain trust"
	case "technology":
		return "- **Simplicity vs. Capability** — Minimal viable vs. fully featured"
	case "marketing":
		return "- **Reach vs. Depth** — Broad audience vs. deep engagement"
	default:
		return "- **Risk vs. Reward** — Conservative execution vs. bold experimentation"
	}
}

// Analyze runs the full consultation: classification, routing, advisor
// loads and institutional memory search, assembled into one report. The
// document loads are independent and run concurrently; each fails soft to
// empty rather than failing the analysis.
func (e *Engine) Analyze(ctx context.Context, task string) (string, error) {
	task, err := validateInput(task, "task")
	if err != nil {
		return "", err
	}

	c := classify.Classify(task)
	route := classify.RouteFor(c.Category)
	keywords, _ := memory.ExtractKeywords(task)

	var (
		seatLists  = make([][]advisor.Seat, len(route.Councils))
		precedents []memory.SessionMatch
		principles []string
		systemDoc  string
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, council := range route.Councils {
		g.Go(func() error {
			seats, err := e.advisors.Seats(gctx, strings.ToLower(council))
			if err != nil {
				e.log.Warn("seat load failed", "council", council, "error", err)
				return nil
			}
			seatLists[i] = seats
			return nil
		})
	}
	g.Go(func() error {
		ledger := e.readLedger()
		precedents = memory.SearchSessions(ledger, keywords, analysisResultLimit)
		return nil
	})
	g.Go(func() error {
		wisdom := e.readWisdom()
		principles = memory.SearchPrinciples(wisdom, keywords, analysisResultLimit)
		return nil
	})
	if e.fullProtocol {
		g.Go(func() error {
			systemDoc = e.readSoft(e.ws.SystemPromptPath())
			return nil
		})
	}
	_ = g.Wait() // loads fail soft; nothing returns an error

	advisors := dedupeSeats(seatLists, maxAdvisors)

	var b strings.Builder
	fmt.Fprintf(&b, "# Boardroom Analysis\n\n")
	fmt.Fprintf(&b, "**Task:** %s\n", task)
	fmt.Fprintf(&b, "**Classification:** %s\n", strings.ToUpper(c.Category))
	fmt.Fprintf(&b, "**Councils Invoked:** %s\n", strings.Join(route.Councils, ", "))
	if len(advisors) > 0 {
		fmt.Fprintf(&b, "**Advisors Available:** %s\n", strings.Join(advisors, ", "))
	} else {
		fmt.Fprintf(&b, "**Advisors Available:** none for this council\n")
	}
	if e.fullProtocol {
		fmt.Fprintf(&b, "**Protocol Status:** ✅ Full protocol files installed\n\n")
	} else {
		fmt.Fprintf(&b, "**Protocol Status:** ⚠️ Demo mode — install the full protocol files for the complete advisor roster\n\n")
	}

	if excerpt := strings.TrimSpace(truncateRunesafe(systemDoc, systemPromptExcerptLength)); excerpt != "" {
		fmt.Fprintf(&b, "## Governance Framework\n%s...\n\n", excerpt)
	}

	fmt.Fprintf(&b, "## Relevant Precedents (%d found)\n", len(precedents))
	if len(precedents) > 0 {
		for i, p := range precedents {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "### %s\n%s...", p.Title, p.Excerpt)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("_No directly relevant precedents in the ledger._\n")
	}

	fmt.Fprintf(&b, "\n## Relevant Wisdom (%d entries)\n", len(principles))
	if len(principles) > 0 {
		b.WriteString(strings.Join(principles, "\n") + "\n")
	} else {
		b.WriteString("_No matching wisdom entries._\n")
	}

	fmt.Fprintf(&b, "\n## Mandatory Tension\n")
	fmt.Fprintf(&b, "Identify at least two conflicting truths before synthesis. For %q, consider:\n%s\n", c.Category, tensionPair(c.Category))

	b.WriteString("\n## Next Steps\n")
	b.WriteString("1. Weigh each advisor's domain against the task\n")
	b.WriteString("2. Resolve the tension pair explicitly\n")
	b.WriteString("3. Synthesize a verdict\n")
	b.WriteString("4. Report what happened with `report_outcome` to grow the ledger\n")

	return b.String(), nil
}

// dedupeSeats flattens per-council seat lists, dropping duplicate names and
// capping at limit. Order follows council order then seat order.
func dedupeSeats(lists [][]advisor.Seat, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, seats := range lists {
		for _, s := range seats {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			out = append(out, s.Name)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

func truncateRunesafe(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
