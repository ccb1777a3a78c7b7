package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

// Palette used by the CLI renderers. ApplyTheme replaces it.
var (
	ColorBorder    = theme.Active.SurfaceHover
	ColorTextDim   = theme.Active.TextDim
	ColorTextMuted = theme.Active.TextMuted
	ColorText      = theme.Active.TextPrimary
	ColorAccent    = theme.Active.Accent
	ColorGreen     = theme.Active.Green
	ColorOrange    = theme.Active.Orange
	ColorRed       = theme.Active.Red
	ColorBlue      = theme.Active.Blue
)

// palette is the theme the CLI styles were last built from.
var palette = theme.Active

// Styles
var (
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	valueStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	goodStyle   lipgloss.Style
	badStyle    lipgloss.Style
	barStyle    lipgloss.Style
	warnStyle   lipgloss.Style
	dimStyle    lipgloss.Style
)

func init() {
	buildStyles()
}

// ApplyTheme switches the CLI palette to t.
func ApplyTheme(t theme.Theme) {
	palette = t
	ColorBorder = t.SurfaceHover
	ColorTextDim = t.TextDim
	ColorTextMuted = t.TextMuted
	ColorText = t.TextPrimary
	ColorAccent = t.Accent
	ColorGreen = t.Green
	ColorOrange = t.Orange
	ColorRed = t.Red
	ColorBlue = t.Blue
	buildStyles()
}

func buildStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	goodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	badStyle = lipgloss.NewStyle().Foreground(ColorRed)
	barStyle = lipgloss.NewStyle().Foreground(ColorBlue)
	warnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	dimStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if lipgloss.Width(h) > widths[i] {
				widths[i] = lipgloss.Width(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := " " + padRight(h, w) + " "
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, w) + " "
			} else {
				padded = " " + padLeft(cell, w) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// padRight pads s with spaces to visual width w.
// Widths are measured in cells so "₹" and box glyphs line up.
func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// RenderMeter renders a proportional bar for a 0-1 fraction, coloured by
// how healthy the value is.
func RenderMeter(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(fraction * float64(width)))
	if filled > width {
		filled = width
	}

	style := goodStyle
	switch {
	case fraction < 0.5:
		style = badStyle
	case fraction < 0.75:
		style = warnStyle
	}

	return style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

// RenderHorizontalBar renders a labelled horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	bar := strings.Repeat("█", barLen)
	return fmt.Sprintf("  %s %s", label, barStyle.Render(bar))
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderWarning renders text in the warning colour.
func RenderWarning(s string) string {
	return warnStyle.Render(s)
}

// RenderGood renders text in the positive colour.
func RenderGood(s string) string {
	return goodStyle.Render(s)
}

// RenderHeader renders a section header.
func RenderHeader(s string) string {
	return headerStyle.Render(s)
}

// RenderScore renders "NN/100" in the colour of the score's tier.
func RenderScore(score int) string {
	return lipgloss.NewStyle().Bold(true).Foreground(palette.ScoreColor(score)).Render(fmt.Sprintf("%d/100", score))
}
