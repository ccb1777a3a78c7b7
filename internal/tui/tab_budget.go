package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/tui/components"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

const maxCategoryBars = 8

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	v := a.view()
	s := v.Summary

	savingsColor := t.Savings
	if s.Income > 0 && s.Savings == 0 {
		savingsColor = t.Overspent
	}
	savingsNote := ""
	if s.Income > 0 {
		savingsNote = cli.FormatPercent(s.SavingsRate) + " of income"
	}

	metrics := []components.Metric{
		{Label: "Income", Value: cli.FormatMoney(s.Income), Note: "monthly"},
		{Label: "Expenses", Value: cli.FormatMoney(s.TotalExpenses),
			Note: fmt.Sprintf("%d entries", len(v.Budget.Expenses))},
		{Label: "Savings", Value: cli.FormatMoney(s.Savings), Note: savingsNote, Color: savingsColor},
		{Label: "Health", Value: fmt.Sprintf("%d/100", s.Score), Note: s.ScoreMessage,
			Color: components.ColorForScore(s.Score)},
	}

	var b strings.Builder
	if a.isCompactLayout() {
		half := cw / 2
		b.WriteString(components.MetricCardRow(metrics[:2], half*2))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], half*2))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	meterW := innerW - 8 // room for " NN/100"
	if meterW < 10 {
		meterW = 10
	}
	msgStyle := lipgloss.NewStyle().Foreground(components.ColorForScore(s.Score)).Bold(true)
	meter := components.ScoreMeter(s.Score, meterW) + "\n" + msgStyle.Render(s.ScoreMessage)
	b.WriteString(components.ContentCard("Financial Health", meter, cw))
	b.WriteString("\n")

	recs := a.renderRecommendations()
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Recommendations", recs, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("By Category", a.renderCategoryBars(cw), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Recommendations", recs, widths[0]),
			components.ContentCard("By Category", a.renderCategoryBars(widths[1]), widths[1]),
		}))
	}
	return b.String()
}

func (a App) renderRecommendations() string {
	t := theme.Active
	bullet := lipgloss.NewStyle().Foreground(t.Accent).Render("•")
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)

	recs := a.view().Summary.Recommendations
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, bullet+" "+text.Render(r))
	}
	return strings.Join(lines, "\n")
}

// renderCategoryBars draws one bar per category, largest first.
func (a App) renderCategoryBars(outerWidth int) string {
	t := theme.Active
	cats := a.view().Summary.ByCategory
	if len(cats) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press [a] to add one.")
	}

	innerW := components.CardInnerWidth(outerWidth)
	labelW := 14
	amountW := 12
	barW := innerW - labelW - amountW - 2
	if barW < 4 {
		barW = 4
	}

	top := cats[0].Total
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == maxCategoryBars {
			b.WriteString(labelStyle.Render(fmt.Sprintf("+%d more", len(cats)-i)))
			break
		}
		n := 0
		if top > 0 {
			n = int(c.Total / top * float64(barW))
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncStr(c.Category, labelW-1))))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(fmt.Sprintf("%-*s", barW, strings.Repeat("█", n))))
		b.WriteString(" ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(c.Total))))
	}
	return b.String()
}
