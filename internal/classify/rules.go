package classify

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// FallbackCategory is assigned when no category rule matches.
const FallbackCategory = "general"

// Rule maps a category to its trigger keywords. Categories need not be
// unique across rules; scores accumulate per category.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// SeverityRule maps an escalation tier to its trigger keywords.
type SeverityRule struct {
	Tier     string   `yaml:"tier"`
	Keywords []string `yaml:"keywords"`
}

// Route is one council routing entry for a category.
type Route struct {
	Category string   `yaml:"category"`
	Councils []string `yaml:"councils"`
	Reason   string   `yaml:"reason"`
}

type ruleFile struct {
	Categories []Rule         `yaml:"categories"`
	Severities []SeverityRule `yaml:"severities"`
	Routing    []Route        `yaml:"routing"`
}

// Package-level rule tables, loaded once from the embedded rules.yaml.
// These are closed configuration, not an extension point.
var (
	categoryRules []Rule
	severityRules []SeverityRule
	routingTable  []Route
)

func init() {
	var rf ruleFile
	if err := yaml.Unmarshal(rulesYAML, &rf); err != nil {
		panic(fmt.Sprintf("load rules.yaml: %v", err))
	}
	if len(rf.Categories) == 0 || len(rf.Severities) == 0 || len(rf.Routing) == 0 {
		panic("rules.yaml: empty rule table")
	}
	categoryRules = rf.Categories
	severityRules = rf.Severities
	routingTable = rf.Routing
}

// CategoryRules returns the ordered category rule set.
func CategoryRules() []Rule { return categoryRules }

// SeverityTiers returns the tiers in priority order (most severe first).
func SeverityTiers() []string {
	tiers := make([]string, len(severityRules))
	for i, sr := range severityRules {
		tiers[i] = sr.Tier
	}
	return tiers
}
