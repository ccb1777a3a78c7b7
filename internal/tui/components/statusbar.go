package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest flash message on the right.
func RenderStatusBar(width int, hints, flash string, flashIsError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	flashColor := t.Green
	if flashIsError {
		flashColor = t.Orange
	}
	flashStyle := lipgloss.NewStyle().Foreground(flashColor).Background(t.Surface).Bold(true)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	left := " " + hints
	right := ""
	if flash != "" {
		right = flashStyle.Render(flash) + fillStyle.Render(" ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + fillStyle.Render(strings.Repeat(" ", padding)) + right)
}
