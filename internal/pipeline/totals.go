// Package pipeline derives totals, the health score, recommendations and the
// FIRE projection from budget state. Everything here is pure.
package pipeline

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/sbudget/internal/model"
)

// amountOf returns the record amount, treating non-finite values as zero.
func amountOf(e model.ExpenseRecord) float64 {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return 0
	}
	return e.Amount
}

// TotalExpenses sums every expense amount.
// Sums go through decimal so 0.1+0.2 style drift never reaches the display.
func TotalExpenses(expenses []model.ExpenseRecord) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(decimal.NewFromFloat(amountOf(e)))
	}
	return sum.InexactFloat64()
}

// Savings is what is left of income after expenses, never negative.
func Savings(income, totalExpenses float64) float64 {
	return math.Max(0, income-totalExpenses)
}

// CategoryTotals aggregates amounts per category. Categories appear in the
// order they were first seen; that order breaks ties when ranking.
func CategoryTotals(expenses []model.ExpenseRecord) []model.CategoryTotal {
	idx := make(map[string]int)
	sums := make([]decimal.Decimal, 0)
	var out []model.CategoryTotal

	for _, e := range expenses {
		cat := model.NormalizeCategory(e.Category)
		i, ok := idx[cat]
		if !ok {
			i = len(out)
			idx[cat] = i
			out = append(out, model.CategoryTotal{Category: cat})
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(amountOf(e)))
	}
	for i := range out {
		out[i].Total = sums[i].InexactFloat64()
	}
	return out
}

// RankCategories returns CategoryTotals sorted by total descending.
// The sort is stable so equal totals keep first-seen order.
func RankCategories(expenses []model.ExpenseRecord) []model.CategoryTotal {
	ranked := CategoryTotals(expenses)
	slices.SortStableFunc(ranked, func(a, b model.CategoryTotal) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		}
		return 0
	})
	return ranked
}

// Entries lists expenses newest first, each tagged with its original index.
func Entries(expenses []model.ExpenseRecord) []model.ExpenseEntry {
	out := make([]model.ExpenseEntry, 0, len(expenses))
	for i := len(expenses) - 1; i >= 0; i-- {
		out = append(out, model.ExpenseEntry{Index: i, ExpenseRecord: expenses[i]})
	}
	return out
}
