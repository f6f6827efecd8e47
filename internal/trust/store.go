package trust

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Profile is the six-dimension trust vector tracked per entity.
// Every dimension stays within [0, 1] after any update.
type Profile struct {
	Reliability    float64 `json:"reliability"`
	Honesty        float64 `json:"honesty"`
	FollowThrough  float64 `json:"followThrough"`
	OutcomeQuality float64 `json:"outcomeQuality"`
	Stability      float64 `json:"stability"`
	RiskProfile    float64 `json:"riskProfile"`
	Interactions   int     `json:"interactions"`
	LastUpdated    string  `json:"lastUpdated"`
}

// Oracle is the whole reputation table — the unit of persistence. Updates
// read the full table, mutate one record and rewrite the full table.
type Oracle struct {
	Agents map[string]Profile `json:"agents"`
}

// Store provides read/rewrite access to the reputation table. The ledger is
// the sole writer; there is no concurrent-update protection (single logical
// writer assumption).
type Store interface {
	// Load returns the current table. A missing or unreadable backing file
	// is an empty table, not an error.
	Load() (*Oracle, error)
	// Save rewrites the whole table.
	Save(*Oracle) error
}

// FileStore persists the oracle as an indented JSON document.
type FileStore struct {
	Path string
}

func (fs *FileStore) Load() (*Oracle, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return &Oracle{Agents: map[string]Profile{}}, nil
	}
	var o Oracle
	if err := json.Unmarshal(data, &o); err != nil || o.Agents == nil {
		// Corrupt table reads as empty; the next Save replaces it.
		return &Oracle{Agents: map[string]Profile{}}, nil
	}
	return &o, nil
}

func (fs *FileStore) Save(o *Oracle) error {
	if err := os.MkdirAll(filepath.Dir(fs.Path), 0755); err != nil {
		return fmt.Errorf("create trust dir: %w", err)
	}
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trust table: %w", err)
	}
	if err := os.WriteFile(fs.Path, data, 0644); err != nil {
		return fmt.Errorf("write trust table: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests. LoadErr and SaveErr, when set,
// are returned by the corresponding method.
type MemStore struct {
	mu      sync.Mutex
	oracle  Oracle
	LoadErr error
	SaveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{oracle: Oracle{Agents: map[string]Profile{}}}
}

func (m *MemStore) Load() (*Oracle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	agents := make(map[string]Profile, len(m.oracle.Agents))
	for k, v := range m.oracle.Agents {
		agents[k] = v
	}
	return &Oracle{Agents: agents}, nil
}

func (m *MemStore) Save(o *Oracle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	agents := make(map[string]Profile, len(o.Agents))
	for k, v := range o.Agents {
		agents[k] = v
	}
	m.oracle = Oracle{Agents: agents}
	return nil
}
