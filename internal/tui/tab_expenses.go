package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/tui/components"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

func (a App) updateExpensesKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g", "home":
		a.expCursor = 0
	case "G", "end":
		a.expCursor = len(a.view().Entries) - 1
		a.clampCursors()
	case "d", "delete", "backspace":
		entries := a.view().Entries
		a.clampCursors()
		if len(entries) == 0 {
			return a, nil, true
		}
		e := entries[a.expCursor]
		a.runBudgetOp(fmt.Sprintf("Removed %s (%s)", e.Category, cli.FormatMoney(e.Amount)), func() error {
			return a.session.Budget().RemoveExpense(e.Index)
		})
	default:
		return a, nil, false
	}
	return a, nil, true
}

// renderExpensesTab lists expenses newest first. The # column is the
// 1-based position in entry order, as used by `sbudget rm`.
func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	entries := a.view().Entries

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No expenses yet. Press [a] to add one, or [1-9] for a preset amount.")
		return components.ContentCard("Expenses", empty, cw)
	}

	innerW := components.CardInnerWidth(cw)
	const (
		idxW    = 5
		whenW   = 19
		amountW = 14
	)
	catW := innerW - idxW - whenW - amountW - 3
	if catW < 8 {
		catW = 8
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	row := func(idx, when, cat, amount string) string {
		return fmt.Sprintf("%-*s %-*s %-*s %*s", idxW, idx, whenW, when, catW, truncStr(cat, catW), amountW, amount)
	}

	// Card chrome (border + title) takes three lines, the header one more.
	visible := h - 4
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.expCursor >= visible {
		offset = a.expCursor - visible + 1
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(row("#", "When", "Category", "Amount")))
	end := min(offset+visible, len(entries))
	for i := offset; i < end; i++ {
		e := entries[i]
		line := row(
			fmt.Sprintf("%d", e.Index+1),
			cli.FormatTimestamp(e.Timestamp),
			e.Category,
			cli.FormatMoney(e.Amount),
		)
		b.WriteString("\n")
		if i == a.expCursor {
			b.WriteString(selStyle.Render(fmt.Sprintf("%-*s", innerW, line)))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
	}
	if end < len(entries) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(entries)-end)))
	}

	title := fmt.Sprintf("Expenses (%d) · total %s", len(entries), cli.FormatMoney(a.view().Summary.TotalExpenses))
	return components.ContentCard(title, b.String(), cw)
}
