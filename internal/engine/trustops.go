package engine

import (
	"fmt"
	"strings"

	"boardroom/internal/format"
	"boardroom/internal/trust"
)

// TrustLookup reports an entity's six-dimension trust vector, composite
// score and recommendation. Unknown entities get a default profile for
// display only — nothing is written on lookup.
func (e *Engine) TrustLookup(entity, context string) (string, error) {
	entity, err := validateInput(entity, "entity")
	if err != nil {
		return "", err
	}
	if context, err = validateInput(context, "context"); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Trust Lookup: %s\n\n", entity)
	if context != "" {
		fmt.Fprintf(&b, "**Context:** %s\n\n", context)
	}

	p, ok := e.ledger.Lookup(entity)
	if !ok {
		fmt.Fprintf(&b, "**Status:** ❓ Unknown Entity\n\n")
		fmt.Fprintf(&b, "No trust profile found for %q. This entity has not been evaluated yet;\n", entity)
		b.WriteString("use `report_outcome` after interactions to build its profile.\n\n")
		fmt.Fprintf(&b, "**Default Recommendation:** %s", trust.Recommendation(trust.UnknownComposite))
		return b.String(), nil
	}

	tb := format.NewTable(format.Markdown)
	tb.Header("Dimension", "Score", "Weight")
	tb.Row("Reliability", format.Percent(p.Reliability), "25%")
	tb.Row("Honesty", format.Percent(p.Honesty), "20%")
	tb.Row("Follow-Through", format.Percent(p.FollowThrough), "20%")
	tb.Row("Outcome Quality", format.Percent(p.OutcomeQuality), "15%")
	tb.Row("Stability", format.Percent(p.Stability), "10%")
	tb.Row("Risk Profile", format.Percent(p.RiskProfile), "10%")

	composite := trust.Composite(p)
	fmt.Fprintf(&b, "## Six-Dimension Trust Vector\n%s\n\n", tb.String())
	fmt.Fprintf(&b, "**Composite Score:** %.1f%%\n", composite*100)
	fmt.Fprintf(&b, "**Interactions:** %d\n", p.Interactions)
	fmt.Fprintf(&b, "**Last Updated:** %s\n\n", p.LastUpdated)
	fmt.Fprintf(&b, "**Recommendation:** %s", trust.Recommendation(composite))
	return b.String(), nil
}
