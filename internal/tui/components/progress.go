package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

// ColorForScore returns the active theme's colour for a 0-100 health score.
func ColorForScore(score int) lipgloss.Color {
	return theme.Active.ScoreColor(score)
}

func clampFrac(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ScoreMeter renders the health meter: a bar filled in proportion to the
// score followed by "NN/100".
func ScoreMeter(score, barWidth int) string {
	t := theme.Active
	color := ColorForScore(score)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	scoreStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(clampFrac(float64(score)/100)) + " " + scoreStyle.Render(fmt.Sprintf("%d/100", score))
}

// Slider renders where value sits between lo and hi, like a range input.
// The focused slider is drawn in the brighter accent.
func Slider(value, lo, hi float64, barWidth int, focused bool) string {
	t := theme.Active

	frac := 0.0
	if hi > lo {
		frac = clampFrac((value - lo) / (hi - lo))
	}

	fill := t.Accent
	if focused {
		fill = t.AccentBright
	}
	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)
	return bar.ViewAs(frac)
}
