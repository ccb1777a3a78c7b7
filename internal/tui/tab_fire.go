package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/controller"
	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/pipeline"
	"github.com/theirongolddev/sbudget/internal/tui/components"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

func paramCount() int {
	return len(model.ParamSpecs)
}

func (a App) updateFIREKey(key string) (App, tea.Cmd, bool) {
	spec := model.ParamSpecs[a.paramCursor]
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "l", "right", "+":
		a.stepParam(spec, 1)
	case "h", "left", "-":
		a.stepParam(spec, -1)
	case "enter":
		v, _ := a.view().FIRE.Get(spec.Key)
		m, cmd := a.beginInput(inputParam, formatParamInput(spec, v), fmt.Sprintf("%g-%g", spec.Min, spec.Max))
		return m.(App), cmd, true
	case "R":
		m, cmd := a.openConfirm(confirmResetFIRE, controller.ConfirmResetFIRE)
		return m.(App), cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) stepParam(spec model.ParamSpec, dir int) {
	if _, err := a.session.FIRE().Step(spec.Key, dir); err != nil {
		a.log.WithError(err).Error("saving FIRE inputs")
		a.setFlash(fmt.Sprintf("Save failed: %s", err), true)
	}
}

// formatParamInput is the editable text for a parameter value.
func formatParamInput(spec model.ParamSpec, v float64) string {
	if spec.Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (a App) renderFIRETab(cw int) string {
	v := a.view()
	p := v.Projection

	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Years to retire", Value: fmt.Sprintf("%.0f", p.YearsToRetire)},
		{Label: "Annual expenses", Value: cli.FormatMoney(p.AnnualExpenses), Note: "today"},
		{Label: "At retirement", Value: cli.FormatMoney(p.FutureExpenses), Note: "per year, inflated"},
		{Label: "FIRE number", Value: cli.FormatMoney(p.FIRENumber), Color: theme.Active.FIRE,
			Note: fmt.Sprintf("lean %s", cli.FormatMoney(p.LeanFIRENumber))},
	}
	if a.isCompactLayout() {
		half := cw / 2
		b.WriteString(components.MetricCardRow(metrics[:2], half*2))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], half*2))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Inputs", a.renderParams(cw), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Annual expenses by age", a.renderFIREChart(cw), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Inputs", a.renderParams(widths[0]), widths[0]),
		components.ContentCard("Annual expenses by age", a.renderFIREChart(widths[1]), widths[1]),
	}))
	return b.String()
}

// renderParams draws each input as a label, slider and value pill.
func (a App) renderParams(outerWidth int) string {
	t := theme.Active
	params := a.view().FIRE

	innerW := components.CardInnerWidth(outerWidth)
	const (
		labelW = 18
		pillW  = 10
	)
	sliderW := innerW - labelW - pillW - 4
	if sliderW < 6 {
		sliderW = 6
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	pillStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selPillStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	lines := make([]string, 0, len(model.ParamSpecs))
	for i, spec := range model.ParamSpecs {
		val, _ := params.Get(spec.Key)
		focused := i == a.paramCursor

		marker, ls, ps := "  ", labelStyle, pillStyle
		if focused {
			marker, ls, ps = markerStyle.Render("▸ "), selLabelStyle, selPillStyle
		}
		lines = append(lines, marker+
			ls.Render(fmt.Sprintf("%-*s", labelW, spec.Label))+
			components.Slider(val, spec.Min, spec.Max, sliderW, focused)+" "+
			ps.Render(fmt.Sprintf("%*s", pillW, cli.FormatParam(string(spec.Key), val))))
	}
	return strings.Join(lines, "\n")
}

// renderFIREChart plots inflated annual expenses from today to retirement.
func (a App) renderFIREChart(outerWidth int) string {
	params := a.view().FIRE
	values := pipeline.InflatedExpenses(params)
	labels := make([]string, len(values))
	for i := range values {
		labels[i] = strconv.Itoa(int(params.CurrentAge) + i)
	}
	return components.BarChart(values, labels, theme.Active.FIRE, components.CardInnerWidth(outerWidth), 8)
}
