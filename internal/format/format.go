// Package format renders report tables. Reports are Markdown by default
// (MCP clients render them); the CLI can ask for fixed-width ASCII.
package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Mode controls the output format.
type Mode int

const (
	Markdown Mode = iota // GitHub-flavoured Markdown tables
	ASCII                // Fixed-width terminal tables
)

// TableBuilder is the project-owned table abstraction. Build a table once;
// render it via the Mode set at creation.
type TableBuilder interface {
	// Header sets the column headers.
	Header(cols ...string)
	// Row appends a data row.
	Row(vals ...any)
	// String renders the table in the configured Mode.
	String() string
}

// NewTable returns a TableBuilder that renders in the given Mode.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &prettyAdapter{writer: w, mode: m}
}

// prettyAdapter wraps go-pretty/v6/table.Writer behind TableBuilder.
type prettyAdapter struct {
	writer table.Writer
	mode   Mode
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendRow(row)
}

func (a *prettyAdapter) String() string {
	if a.mode == Markdown {
		return a.writer.RenderMarkdown()
	}
	return a.writer.Render()
}

// Percent renders a [0,1] score as a whole percentage, e.g. "62%".
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
