// Package engine composes the classifier, router, memory search, advisor
// loading and the trust ledger into the five caller-facing operations.
// Every operation returns a Markdown report; hard errors are reserved for
// invalid input — missing corpora and failed writes degrade into notices
// inside the report instead.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"boardroom/internal/advisor"
	"boardroom/internal/logging"
	"boardroom/internal/store"
	"boardroom/internal/trust"
	"boardroom/internal/workspace"
)

// MaxInputLength caps user-provided strings to bound memory and compute.
const MaxInputLength = 10_000

// Engine holds the wired collaborators. Construct once via New.
type Engine struct {
	ws           *workspace.Workspace
	advisors     advisor.Provider
	fullProtocol bool
	ledger       *trust.Ledger
	index        store.Store
	now          func() time.Time
	log          *slog.Logger
}

// Config wires an Engine. Advisors, Ledger and Index are required; the
// host selects the advisor provider (file-backed or embedded demo) once at
// startup.
type Config struct {
	Workspace    *workspace.Workspace
	Advisors     advisor.Provider
	FullProtocol bool
	Ledger       *trust.Ledger
	Index        store.Store
}

func New(cfg Config) *Engine {
	return &Engine{
		ws:           cfg.Workspace,
		advisors:     cfg.Advisors,
		fullProtocol: cfg.FullProtocol,
		ledger:       cfg.Ledger,
		index:        cfg.Index,
		now:          time.Now,
		log:          logging.New("engine"),
	}
}

// WithClock overrides the engine clock for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}

// readSoft is the fail-soft read used for every corpus: missing or
// unreadable documents read as empty.
func (e *Engine) readSoft(path string) string {
	return workspace.ReadFileSoft(path)
}

func (e *Engine) readLedger() string { return e.readSoft(e.ws.LedgerPath) }
func (e *Engine) readWisdom() string { return e.readSoft(e.ws.WisdomPath) }

// validateInput enforces the length cap and strips NUL bytes. The only
// hard-error path in the engine.
func validateInput(input, fieldName string) (string, error) {
	if len(input) > MaxInputLength {
		return "", fmt.Errorf("%s exceeds maximum length (%d characters), received %d",
			fieldName, MaxInputLength, len(input))
	}
	return strings.ReplaceAll(input, "\x00", ""), nil
}
