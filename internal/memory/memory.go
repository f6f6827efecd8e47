// Package memory implements keyword-overlap retrieval over the two
// institutional corpora: the session ledger (append-only decision log) and
// the wisdom list (distilled principles). Both pipelines treat a missing or
// unreadable corpus as empty — sparse results, never errors.
package memory

import (
	"sort"
	"strings"
)

// MinKeywordLength is the minimum query token length to search with.
const MinKeywordLength = 3

// ExcerptLength bounds the session excerpt returned per match.
const ExcerptLength = 400

// sectionMarker delimits ledger sections. Content before the first marker
// is preamble and is never searched.
const sectionMarker = "\n## "

// SessionMatch is one scored ledger section.
type SessionMatch struct {
	Title   string
	Excerpt string
	Score   int
}

// ExtractKeywords lowercases the query, splits on whitespace and drops
// tokens shorter than MinKeywordLength. allFiltered is true only when the
// query had tokens and the filter removed every one of them — distinct from
// an empty query, so callers can explain an empty result.
func ExtractKeywords(query string) (keywords []string, allFiltered bool) {
	words := strings.Fields(strings.ToLower(query))
	for _, w := range words {
		if len(w) >= MinKeywordLength {
			keywords = append(keywords, w)
		}
	}
	return keywords, len(words) > 0 && len(keywords) == 0
}

// SearchSessions scores every ledger section by the number of distinct
// keywords present as substrings (presence, not frequency), drops zero
// scores, sorts by descending score with ties preserving document order,
// and truncates to limit.
func SearchSessions(ledger string, keywords []string, limit int) []SessionMatch {
	if ledger == "" || len(keywords) == 0 || limit <= 0 {
		return nil
	}

	sections := strings.Split("\n"+ledger, sectionMarker)[1:]
	var matches []SessionMatch
	for _, section := range sections {
		lower := strings.ToLower(section)
		score := 0
		seen := make(map[string]bool)
		for _, kw := range keywords {
			if !seen[kw] && strings.Contains(lower, kw) {
				seen[kw] = true
				score++
			}
		}
		if score == 0 {
			continue
		}
		matches = append(matches, SessionMatch{
			Title:   sectionTitle(section),
			Excerpt: truncate(section, ExcerptLength),
			Score:   score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SearchPrinciples keeps wisdom lines that look like entries (bullet or
// quote prefixes) and contain ANY keyword as a substring. No ranking:
// document order is preserved, truncated to limit.
func SearchPrinciples(wisdom string, keywords []string, limit int) []string {
	if wisdom == "" || len(keywords) == 0 || limit <= 0 {
		return nil
	}

	var out []string
	for _, line := range strings.Split(wisdom, "\n") {
		if !isPrincipleLine(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, line)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// isPrincipleLine reports whether a wisdom line qualifies as an entry:
// "- [", "- *", "> ", or a plain "- " bullet longer than 10 characters.
func isPrincipleLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "- ["), strings.HasPrefix(line, "- *"), strings.HasPrefix(line, "> "):
		return true
	case strings.HasPrefix(line, "- ") && len(line) > 10:
		return true
	}
	return false
}

func sectionTitle(section string) string {
	title, _, _ := strings.Cut(section, "\n")
	title = strings.TrimSpace(title)
	if title == "" {
		return "Untitled"
	}
	return title
}

// truncate caps s at n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
