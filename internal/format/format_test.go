package format_test

import (
	"strings"
	"testing"

	"boardroom/internal/format"
)

func TestNewTable_Markdown(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Dimension", "Score")
	tb.Row("Reliability", "62%")

	out := tb.String()
	if !strings.Contains(out, "| Dimension | Score |") {
		t.Errorf("missing markdown header row:\n%s", out)
	}
	if !strings.Contains(out, "| Reliability | 62% |") {
		t.Errorf("missing markdown data row:\n%s", out)
	}
}

func TestNewTable_ASCII(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("A")
	tb.Row("b")

	out := tb.String()
	if strings.Contains(out, "|---") {
		t.Errorf("ASCII mode should not emit markdown separators:\n%s", out)
	}
	if !strings.Contains(out, "b") {
		t.Errorf("missing cell content:\n%s", out)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "50%"},
		{0.625, "62%"},
		{1, "100%"},
		{0, "0%"},
	}
	for _, tt := range tests {
		if got := format.Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
