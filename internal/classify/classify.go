// Package classify scores free-text tasks against static keyword rule sets
// to pick a decision category, a severity tier, and a council route.
//
// Matching is deliberate substring matching, not tokenization: "seo" matches
// inside "videos". Changing this to word-boundary matching would change
// classification outcomes and is not an improvement.
package classify

import (
	"sort"
	"strings"
)

// Classification is the result of score-based category classification.
type Classification struct {
	// Category is one of the configured labels, or FallbackCategory when
	// nothing matched.
	Category string
	// Matched lists every trigger keyword that fired, across all rules, in
	// rule order then keyword order. Duplicates are preserved for audit.
	Matched []string
}

// Match counts, for every rule, how many of its keywords occur as a
// substring of lower. Categories with zero matches are omitted from scores.
// Pure function: lower must already be lowercased by the caller.
func Match(lower string, rules []Rule) (scores map[string]int, matched []string) {
	scores = make(map[string]int)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				scores[r.Category]++
				matched = append(matched, kw)
			}
		}
	}
	return scores, matched
}

// Classify runs score-based classification over the category rule set.
// The strictly highest-scoring category wins; ties break toward the
// earliest-declared category. Zero matches anywhere yields FallbackCategory.
func Classify(task string) Classification {
	lower := strings.ToLower(task)
	scores, matched := Match(lower, categoryRules)

	// Declaration order of each scoring category, for the explicit
	// tie-break. Never rely on map iteration order here.
	order := make(map[string]int)
	var ranked []string
	for _, r := range categoryRules {
		if _, seen := order[r.Category]; !seen && scores[r.Category] > 0 {
			order[r.Category] = len(order)
			ranked = append(ranked, r.Category)
		}
	}
	if len(ranked) == 0 {
		return Classification{Category: FallbackCategory, Matched: matched}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return Classification{Category: ranked[0], Matched: matched}
}

// Severity classifies escalation level with a first-match policy: tiers are
// checked in priority order (critical first) and a single matching keyword
// anywhere is enough to escalate. This is deliberately more conservative
// than the scoring policy used for categories.
func Severity(task string) string {
	lower := strings.ToLower(task)
	for _, sr := range severityRules {
		for _, kw := range sr.Keywords {
			if strings.Contains(lower, kw) {
				return sr.Tier
			}
		}
	}
	// Nothing matched: lowest tier.
	return severityRules[len(severityRules)-1].Tier
}

// RouteFor returns the council route for a category. Unknown categories fall
// back to the general entry, which the routing table always carries.
func RouteFor(category string) Route {
	var general Route
	for _, rt := range routingTable {
		if rt.Category == category {
			return rt
		}
		if rt.Category == FallbackCategory {
			general = rt
		}
	}
	return general
}
