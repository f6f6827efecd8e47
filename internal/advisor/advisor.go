// Package advisor loads reviewer seat documents for a council. Two
// providers exist: FileProvider reads the full protocol install from disk,
// EmbeddedProvider serves the bundled demo council. The host picks one at
// startup; the engine never branches on install mode beyond that choice.
package advisor

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Seat is one named reviewer parsed from a seats document.
type Seat struct {
	Name string
}

// Provider returns the seats for a council. An unknown council yields an
// empty slice, not an error — the engine degrades gracefully.
type Provider interface {
	Seats(ctx context.Context, council string) ([]Seat, error)
}

var seatPattern = regexp.MustCompile(`(?im)^board_member:\s*(.+)$`)

// ParseSeats extracts seat names from a seats document. Lines look like
// "board_member: Name".
func ParseSeats(doc string) []Seat {
	matches := seatPattern.FindAllStringSubmatch(doc, -1)
	seats := make([]Seat, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name != "" {
			seats = append(seats, Seat{Name: name})
		}
	}
	return seats
}

// FileProvider reads council seats from <Root>/<council>/seats.md.
type FileProvider struct {
	Root string
}

func (p *FileProvider) Seats(_ context.Context, council string) ([]Seat, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, council, "seats.md"))
	if err != nil {
		return nil, nil
	}
	return ParseSeats(string(data)), nil
}

// HasProtocolFiles reports whether the full protocol files are installed
// under root. Requires SYSTEM_PROMPT.md plus at least one council-level
// entry, to avoid false positives from partial installs.
func HasProtocolFiles(root string) bool {
	if _, err := os.Stat(filepath.Join(root, "SYSTEM_PROMPT.md")); err != nil {
		return false
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, e := range entries {
		switch e.Name() {
		case "seats", "COGNITIVE_DOSSIERS.md", "SIGNATURE_QUESTIONS.md":
			return true
		}
		if e.IsDir() {
			if _, err := os.Stat(filepath.Join(root, e.Name(), "seats.md")); err == nil {
				return true
			}
		}
	}
	return false
}
