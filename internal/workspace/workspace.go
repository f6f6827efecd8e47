// Package workspace resolves the on-disk layout of the boardroom data
// stores. The engine never resolves paths itself — it receives a resolved
// Workspace and read/append capability over the three stores.
package workspace

import (
	"os"
	"path/filepath"

	"boardroom/internal/store"
)

// Environment overrides for portability.
const (
	EnvRoot      = "BOARDROOM_ROOT"
	EnvTrustPath = "BOARDROOM_TRUST_PATH"
	EnvDBPath    = "BOARDROOM_DB_PATH"
)

// Workspace holds the resolved paths for the boardroom data stores.
type Workspace struct {
	// Root is the protocol root (default $HOME/.ai/boardroom).
	Root string
	// MastermindRoot holds councils, seats and the system prompt.
	MastermindRoot string
	// LedgerPath is the append-only session log (Markdown).
	LedgerPath string
	// WisdomPath is the distilled principle list (Markdown).
	WisdomPath string
	// TrustPath is the reputation table (JSON).
	TrustPath string
	// DBPath is the SQLite outcome index.
	DBPath string
}

// Resolve builds a Workspace from defaults and environment overrides.
func Resolve() *Workspace {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	root := os.Getenv(EnvRoot)
	if root == "" {
		root = filepath.Join(home, ".ai", "boardroom")
	}
	trustPath := os.Getenv(EnvTrustPath)
	if trustPath == "" {
		trustPath = filepath.Join(home, ".boardroom", "trust-oracle.json")
	}
	dbPath := os.Getenv(EnvDBPath)
	if dbPath == "" {
		dbPath = filepath.Join(root, store.DefaultDBPath)
	}

	mastermind := filepath.Join(root, "mastermind")
	return &Workspace{
		Root:           root,
		MastermindRoot: mastermind,
		LedgerPath:     filepath.Join(root, "LEDGER.md"),
		WisdomPath:     filepath.Join(mastermind, "BOARD_WISDOM.md"),
		TrustPath:      trustPath,
		DBPath:         dbPath,
	}
}

// SystemPromptPath is the governance framework document, present only in a
// full protocol install.
func (w *Workspace) SystemPromptPath() string {
	return filepath.Join(w.MastermindRoot, "SYSTEM_PROMPT.md")
}

// ReadFileSoft reads a file, returning "" on any failure. Missing corpora
// read as empty — sparse results, never errors.
func ReadFileSoft(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// AppendSection appends text to the file at path, creating the parent
// directory and the file as needed.
func AppendSection(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
