// Package trust maintains the per-entity reputation ledger: a persisted
// six-dimension score vector evolved by asymmetric exponential smoothing
// from reported outcomes, collapsed into a weighted composite and a
// discrete recommendation.
package trust

import (
	"regexp"
	"strings"
	"time"
)

// EMA smoothing factor for score updates.
const emaAlpha = 0.2

// Outcome deltas. Failures weigh more than successes: trust erodes faster
// than it builds.
const (
	deltaSuccess = 0.1
	deltaFailure = -0.15

	followThroughSuccess = 0.05
	followThroughFailure = -0.1
)

// Composite weights per dimension. Must sum to 1.0.
const (
	weightReliability    = 0.25
	weightHonesty        = 0.20
	weightFollowThrough  = 0.20
	weightOutcomeQuality = 0.15
	weightStability      = 0.10
	weightRiskProfile    = 0.10
)

// UnknownComposite is the display-only composite for entities with no
// record. A pure lookup never writes one.
const UnknownComposite = 0.5

// negativeOutcomeTerms flags failure language in outcome narratives.
var negativeOutcomeTerms = regexp.MustCompile(`\b(fail|broke|error|crash|wrong|bad|lost|regress|rollback|revert)\b`)

// UpdateResult reports whether an update was persisted. Store failures are
// carried here, never as a Go error past the ledger boundary.
type UpdateResult struct {
	Updated bool
	Err     string
}

// Ledger owns read-modify-write access to the reputation table.
type Ledger struct {
	store Store
	now   func() time.Time
}

// NewLedger wires a ledger onto a store. The clock is injectable for tests
// via WithClock.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// WithClock overrides the ledger clock. Returns the ledger for chaining.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Update applies one outcome report to the entity's profile, creating the
// profile on first report. Affected dimensions are Reliability,
// OutcomeQuality and FollowThrough; Honesty, Stability and RiskProfile are
// untouched by outcome events.
func (l *Ledger) Update(entity string, positive bool) UpdateResult {
	if entity == "" {
		return UpdateResult{Updated: false, Err: "no entity provided"}
	}

	oracle, err := l.store.Load()
	if err != nil {
		return UpdateResult{Updated: false, Err: err.Error()}
	}

	delta := deltaFailure
	ftDelta := followThroughFailure
	if positive {
		delta = deltaSuccess
		ftDelta = followThroughSuccess
	}
	stamp := l.now().UTC().Format(time.RFC3339)

	if p, ok := oracle.Agents[entity]; ok {
		p.Reliability = clamp01(p.Reliability + emaAlpha*delta)
		p.OutcomeQuality = clamp01(p.OutcomeQuality + emaAlpha*delta)
		p.FollowThrough = clamp01(p.FollowThrough + emaAlpha*ftDelta)
		p.Interactions++
		p.LastUpdated = stamp
		oracle.Agents[entity] = p
	} else {
		// First report: neutral midpoint nudged by the unscaled delta.
		oracle.Agents[entity] = Profile{
			Reliability:    clamp01(0.5 + delta),
			Honesty:        0.5,
			FollowThrough:  clamp01(0.5 + ftDelta),
			OutcomeQuality: clamp01(0.5 + delta),
			Stability:      0.5,
			RiskProfile:    0.5,
			Interactions:   1,
			LastUpdated:    stamp,
		}
	}

	if err := l.store.Save(oracle); err != nil {
		return UpdateResult{Updated: false, Err: err.Error()}
	}
	return UpdateResult{Updated: true}
}

// Lookup returns the entity's profile. Read-only: an absent entity writes
// nothing and reports ok=false.
func (l *Ledger) Lookup(entity string) (Profile, bool) {
	oracle, err := l.store.Load()
	if err != nil {
		return Profile{}, false
	}
	p, ok := oracle.Agents[entity]
	return p, ok
}

// Composite collapses the six dimensions into one weighted score.
func Composite(p Profile) float64 {
	return p.Reliability*weightReliability +
		p.Honesty*weightHonesty +
		p.FollowThrough*weightFollowThrough +
		p.OutcomeQuality*weightOutcomeQuality +
		p.Stability*weightStability +
		p.RiskProfile*weightRiskProfile
}

// Recommendation is a four-tier step function of the composite score.
func Recommendation(composite float64) string {
	switch {
	case composite >= 0.85:
		return "TRUST — High confidence, minimal oversight needed"
	case composite >= 0.65:
		return "VERIFY — Good standing, periodic checks recommended"
	case composite >= 0.45:
		return "CAUTION — Elevated risk, active monitoring required"
	default:
		return "AVOID — Insufficient trust, do not delegate critical tasks"
	}
}

// PositiveOutcome derives the outcome-positive signal the ledger consumes:
// the recommendation was followed AND the outcome narrative carries no
// failure language.
func PositiveOutcome(outcome string, followedRecommendation bool) bool {
	if !followedRecommendation {
		return false
	}
	return !negativeOutcomeTerms.MatchString(strings.ToLower(outcome))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
