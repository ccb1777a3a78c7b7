package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - padding is unstyled", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	want := lipgloss.Width(tallCard) + lipgloss.Width(shortCard)
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("Line %d: width %d, want %d", i, w, want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		sum := 0
		for _, w := range LayoutRow(101, n) {
			sum += w
		}
		if sum != 101 {
			t.Errorf("LayoutRow(101, %d) sums to %d", n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "₹50,000"},
		{Label: "Savings", Value: "₹30,000", Note: "60.0%"},
	}, 60)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}
