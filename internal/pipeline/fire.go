package pipeline

import (
	"math"

	"github.com/theirongolddev/sbudget/internal/model"
)

// Withdrawal-rule multiples of annual expenses.
const (
	LeanMultiple = 25 // 4% rule
	FatMultiple  = 30 // ~3.3% rule
)

// Project computes the FIRE target for p. Expenses are inflated with annual
// compounding over the years left until retirement.
func Project(p model.FIREParameters) model.FIREProjection {
	years := math.Max(0, p.RetirementAge-p.CurrentAge)
	annual := p.MonthlyExpenses * 12
	future := annual * math.Pow(1+p.Inflation/100, years)

	lean := future * LeanMultiple
	fat := future * FatMultiple

	return model.FIREProjection{
		YearsToRetire:  years,
		AnnualExpenses: annual,
		FutureExpenses: future,
		LeanFIRENumber: lean,
		FatFIRENumber:  fat,
		FIRENumber:     math.Max(lean, fat),
	}
}

// InflatedExpenses returns the annual expense figure for each year from now
// through retirement. The first element is today's annual expenses and the
// last equals the projection's FutureExpenses.
func InflatedExpenses(p model.FIREParameters) []float64 {
	years := int(math.Max(0, p.RetirementAge-p.CurrentAge))
	annual := p.MonthlyExpenses * 12
	growth := 1 + p.Inflation/100

	out := make([]float64, years+1)
	for y := range out {
		out[y] = annual * math.Pow(growth, float64(y))
	}
	return out
}
