package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

func TestFormatChartLabel(t *testing.T) {
	tests := map[float64]string{
		500:       "500",
		2000:      "2k",
		2500:      "2.5k",
		100000:    "1L",
		450000:    "4.5L",
		10000000:  "1Cr",
		125000000: "12.5Cr",
	}
	for in, want := range tests {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestBarChartHeightAndLabels(t *testing.T) {
	values := []float64{192000, 203520, 215731, 228675}
	labels := []string{"28", "29", "30", "31"}

	out := BarChart(values, labels, theme.Active.Blue, 40, 6)
	lines := strings.Split(out, "\n")

	// height rows + axis + label line
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "28") || !strings.Contains(last, "31") {
		t.Fatalf("label line %q missing first/last labels", last)
	}
	for i, line := range lines[:6] {
		if lipgloss.Width(line) > 40 {
			t.Errorf("row %d wider than chart: %d", i, lipgloss.Width(line))
		}
	}
}

func TestSampleSeriesKeepsEnds(t *testing.T) {
	values := make([]float64, 50)
	labels := make([]string, 50)
	for i := range values {
		values[i] = float64(i)
		labels[i] = string(rune('a' + i%26))
	}

	v, l := sampleSeries(values, labels, 10)
	if len(v) != 10 || len(l) != 10 {
		t.Fatalf("sampled to %d/%d points, want 10", len(v), len(l))
	}
	if v[0] != 0 || v[9] != 49 {
		t.Fatalf("ends = %v, %v; want 0, 49", v[0], v[9])
	}
}

func TestBarChartEmpty(t *testing.T) {
	if BarChart(nil, nil, theme.Active.Blue, 40, 6) != "" {
		t.Fatal("empty series should render nothing")
	}
}
