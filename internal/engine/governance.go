package engine

import (
	"fmt"
	"strings"

	"boardroom/internal/classify"
)

func severityMarker(severity string) string {
	switch severity {
	case "critical":
		return "🔴"
	case "standard":
		return "🟡"
	default:
		return "🟢"
	}
}

func severityAdvice(severity string) string {
	switch severity {
	case "critical":
		return "⚠️ **Full boardroom session required.** Use `analyze` for a multi-advisor review. Critical decisions need opposing viewpoints on the table before anyone commits."
	case "standard":
		return "📋 **Standard review recommended.** Use `analyze` for structured advice and `query_intelligence` for precedents."
	default:
		return "✅ **Routine — proceed with confidence.** Quick check complete. Use `query_intelligence` if you want precedent matches."
	}
}

// CheckGovernance classifies a task and reports category, severity and
// council routing. No I/O beyond the static tables.
func (e *Engine) CheckGovernance(task string) (string, error) {
	task, err := validateInput(task, "task")
	if err != nil {
		return "", err
	}

	c := classify.Classify(task)
	severity := classify.Severity(task)
	route := classify.RouteFor(c.Category)

	matched := "none"
	if len(c.Matched) > 0 {
		matched = strings.Join(c.Matched, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Governance Check\n\n")
	fmt.Fprintf(&b, "**Task:** %s\n", task)
	fmt.Fprintf(&b, "**Classification:** %s\n", strings.ToUpper(c.Category))
	fmt.Fprintf(&b, "**Matched Keywords:** %s\n", matched)
	fmt.Fprintf(&b, "**Severity:** %s %s\n", severityMarker(severity), strings.ToUpper(severity))
	fmt.Fprintf(&b, "**Councils:** %s\n", strings.Join(route.Councils, ", "))
	fmt.Fprintf(&b, "**Routing Reason:** %s\n\n", route.Reason)
	fmt.Fprintf(&b, "## Recommendation\n%s", severityAdvice(severity))
	return b.String(), nil
}
