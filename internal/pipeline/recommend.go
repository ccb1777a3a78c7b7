package pipeline

import (
	"fmt"
	"math"

	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/money"
)

// Recommendation texts.
const (
	RecEnterIncome = "Enter your income to get recommendations."
	RecSaveTen     = "Try to save at least 10% of your income."
	RecAimTwenty   = "Aim for 20% savings to improve score."
	RecGoodSavings = "Good savings! Consider long-term investments."
)

// Recommendations returns advice in display order: the savings-rate tip,
// then a nudge about the single biggest category.
func Recommendations(income, totalExpenses float64, expenses []model.ExpenseRecord) []string {
	if income <= 0 || math.IsNaN(income) {
		return []string{RecEnterIncome}
	}

	rate := Savings(income, totalExpenses) / income
	recs := make([]string, 0, 2)
	switch {
	case rate < 0.1:
		recs = append(recs, RecSaveTen)
	case rate < 0.2:
		recs = append(recs, RecAimTwenty)
	default:
		recs = append(recs, RecGoodSavings)
	}

	ranked := RankCategories(expenses)
	if len(ranked) > 0 && ranked[0].Total > 0 {
		top := ranked[0]
		recs = append(recs, fmt.Sprintf("Consider cutting down on %s (%s)", top.Category, money.Format(top.Total)))
	}

	return recs
}

// Summarize derives every budget figure from state in one pass.
func Summarize(state model.BudgetState) model.BudgetSummary {
	total := TotalExpenses(state.Expenses)
	savings := Savings(state.Income, total)
	score := HealthScore(state.Income, total, state.Expenses)

	var rate float64
	if state.Income > 0 {
		rate = savings / state.Income
	}

	return model.BudgetSummary{
		Income:          state.Income,
		TotalExpenses:   total,
		Savings:         savings,
		SavingsRate:     rate,
		Score:           score,
		ScoreMessage:    ScoreMessage(score),
		Recommendations: Recommendations(state.Income, total, state.Expenses),
		ByCategory:      RankCategories(state.Expenses),
	}
}
