package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/controller"
	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/pipeline"
)

const (
	meterWidth    = 30
	categoryBarW  = 24
	categoryLabel = 18
)

// budgetRenderer prints the budget summary after every change.
func budgetRenderer(w io.Writer) controller.Renderer {
	return controller.RenderFunc(func(v controller.View) { printBudget(w, v) })
}

// fireRenderer prints the FIRE projection after every change.
func fireRenderer(w io.Writer) controller.Renderer {
	return controller.RenderFunc(func(v controller.View) { printFIRE(w, v) })
}

func printBudget(w io.Writer, v controller.View) {
	s := v.Summary

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("BUDGET"))
	fmt.Fprintln(w)

	rows := [][]string{
		{"Income", cli.FormatMoney(s.Income)},
		{"Expenses", cli.FormatMoney(s.TotalExpenses)},
		{"Savings", cli.FormatMoney(s.Savings)},
		{"---"},
		{"Savings rate", cli.FormatPercent(s.SavingsRate)},
		{"Entries", cli.FormatNumber(int64(len(v.Budget.Expenses)))},
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %s %s\n",
		cli.RenderHeader("Health score"),
		cli.RenderMeter(pipeline.MeterFraction(s.Score), meterWidth),
		cli.RenderScore(s.Score),
	)
	fmt.Fprintf(w, "  %s\n", cli.RenderMuted(s.ScoreMessage))

	if len(s.ByCategory) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", cli.RenderHeader("By category"))
		top := s.ByCategory[0].Total
		for _, c := range s.ByCategory {
			label := fmt.Sprintf("%-*s %12s", categoryLabel, truncate(c.Category, categoryLabel), cli.FormatMoney(c.Total))
			fmt.Fprintln(w, cli.RenderHorizontalBar(label, c.Total, top, categoryBarW))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", cli.RenderHeader("Recommendations"))
	for _, r := range s.Recommendations {
		fmt.Fprintf(w, "  • %s\n", r)
	}
	fmt.Fprintln(w)
}

func printEntries(w io.Writer, entries []model.ExpenseEntry, limit int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "\n  No expenses recorded yet.")
		fmt.Fprintln(w, "  Add one with `sbudget add <amount> [category]`.")
		return
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Index + 1),
			cli.FormatTimestamp(e.Timestamp),
			e.Category,
			cli.FormatMoney(e.Amount),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Expenses (newest first)",
		Headers: []string{"#", "When", "Category", "Amount"},
		Rows:    rows,
	}))
}

func printFIRE(w io.Writer, v controller.View) {
	p := v.Projection

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("FIRE PROJECTION"))
	fmt.Fprintln(w)

	inputs := make([][]string, 0, len(model.ParamSpecs))
	for _, spec := range model.ParamSpecs {
		val, _ := v.FIRE.Get(spec.Key)
		inputs = append(inputs, []string{spec.Label, string(spec.Key), cli.FormatParam(string(spec.Key), val)})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Inputs",
		Headers: []string{"Parameter", "Key", "Value"},
		Rows:    inputs,
	}))

	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Years to retire", strconv.Itoa(int(p.YearsToRetire))},
			{"Annual expenses (today)", cli.FormatMoney(p.AnnualExpenses)},
			{"Annual expenses (at retirement)", cli.FormatMoney(p.FutureExpenses)},
			{"---"},
			{fmt.Sprintf("Lean FIRE (%dx)", pipeline.LeanMultiple), cli.FormatMoney(p.LeanFIRENumber)},
			{fmt.Sprintf("Fat FIRE (%dx)", pipeline.FatMultiple), cli.FormatMoney(p.FatFIRENumber)},
			{"FIRE number", cli.FormatMoney(p.FIRENumber)},
		},
	}))
	fmt.Fprintln(w)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func withBudget() []controller.Renderer {
	return []controller.Renderer{budgetRenderer(os.Stdout)}
}

func withFIRE() []controller.Renderer {
	return []controller.Renderer{fireRenderer(os.Stdout)}
}
