// Package model holds the budget state and the derived figures shown to the user.
package model

import (
	"strings"
	"time"
)

// DefaultCategory is used when an expense is recorded without a category.
const DefaultCategory = "Miscellaneous"

// ExpenseRecord is a single recorded expense.
type ExpenseRecord struct {
	Amount    float64
	Category  string
	Timestamp time.Time
}

// BudgetState is the income figure plus every expense, in the order entered.
type BudgetState struct {
	Income   float64
	Expenses []ExpenseRecord
}

// NormalizeCategory trims the label and falls back to DefaultCategory.
func NormalizeCategory(cat string) string {
	cat = strings.TrimSpace(cat)
	if cat == "" {
		return DefaultCategory
	}
	return cat
}

// Clone returns a copy that shares no backing array with s.
func (s BudgetState) Clone() BudgetState {
	out := BudgetState{Income: s.Income}
	if len(s.Expenses) > 0 {
		out.Expenses = make([]ExpenseRecord, len(s.Expenses))
		copy(out.Expenses, s.Expenses)
	}
	return out
}

// ExpenseEntry is an expense as listed to the user, newest first.
// Index is the record's position in BudgetState.Expenses.
type ExpenseEntry struct {
	Index int
	ExpenseRecord
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// BudgetSummary holds everything derived from a BudgetState.
type BudgetSummary struct {
	Income          float64
	TotalExpenses   float64
	Savings         float64
	SavingsRate     float64
	Score           int
	ScoreMessage    string
	Recommendations []string
	ByCategory      []CategoryTotal
}
