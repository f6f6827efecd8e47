package advisor

import (
	"context"
	_ "embed"
)

//go:embed demo/seats.md
var demoSeats string

// EmbeddedProvider serves the bundled demo council for every requested
// council. Used when the full protocol files are not installed.
type EmbeddedProvider struct{}

func (EmbeddedProvider) Seats(_ context.Context, _ string) ([]Seat, error) {
	return ParseSeats(demoSeats), nil
}
