package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

var barBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders values as vertical bars over height rows with a y-axis
// of rounded money ticks. Only the first and last labels are printed under
// the x-axis. Bars are sampled down when there are more values than fit.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 || height < 2 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}
	step := chartTickStep(peak)
	ceiling := math.Ceil(peak/step) * step

	yLabelW := len(formatChartLabel(ceiling)) + 1
	plotW := width - yLabelW - 1
	if plotW < 2 {
		plotW = 2
	}

	// One column per bar plus a gap; sample evenly if that overflows.
	values, labels = sampleSeries(values, labels, (plotW+1)/2)
	n := len(values)
	barW := max(1, (plotW-(n-1))/n)
	barW = min(barW, 4)
	axisLen := n*barW + (n - 1)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatChartLabel(ceiling)
		} else if row == (height+1)/2 {
			label = formatChartLabel(top)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, v := range values {
			if i > 0 {
				b.WriteString(gapStyle.Render(" "))
			}
			block := barBlocks[0]
			switch {
			case v >= top:
				block = barBlocks[8]
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * 8)
				block = barBlocks[max(1, min(8, idx))]
			}
			b.WriteString(barStyle.Render(strings.Repeat(string(block), barW)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n && n > 0 {
		first, last := labels[0], labels[n-1]
		gap := axisLen - len(first) - len(last)
		line := first
		if n > 1 && gap > 0 {
			line += strings.Repeat(" ", gap) + last
		}
		b.WriteString("\n")
		b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW+1) + line))
	}

	return b.String()
}

// sampleSeries picks at most limit evenly spaced points, always keeping the
// first and last.
func sampleSeries(values []float64, labels []string, limit int) ([]float64, []string) {
	n := len(values)
	if limit < 2 || n <= limit {
		return values, labels
	}

	outV := make([]float64, limit)
	var outL []string
	if len(labels) == n {
		outL = make([]string, limit)
	}
	for i := range outV {
		src := i * (n - 1) / (limit - 1)
		outV[i] = values[src]
		if outL != nil {
			outL[i] = labels[src]
		}
	}
	return outV, outL
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel abbreviates rupee amounts the Indian way: crore, lakh, thousand.
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e7:
		return trimZero(v/1e7) + "Cr"
	case v >= 1e5:
		return trimZero(v/1e5) + "L"
	case v >= 1e3:
		return trimZero(v/1e3) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZero(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
