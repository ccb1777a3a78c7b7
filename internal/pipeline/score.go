package pipeline

import (
	"math"
	"strings"
	"unicode"

	"github.com/theirongolddev/sbudget/internal/model"
)

// discretionaryStems are matched as substrings of the folded category name.
// A category like "Netflix/OTT" or "Wifi bill" counts; so does any unrelated
// word that happens to contain a stem.
var discretionaryStems = []string{"ott", "food", "shopping", "wifi", "entertainment"}

const (
	scoreBaseline  = 50
	scoreFactorCap = 40
)

// Score tiers.
const (
	MsgGreat = "Great — keep going"
	MsgOkay  = "Okay — try improving"
	MsgPoor  = "Poor — fix spending"
)

// foldCategory lower-cases the label and drops everything but letters.
func foldCategory(cat string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(cat) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDiscretionary reports whether the category counts against the score.
func IsDiscretionary(cat string) bool {
	folded := foldCategory(cat)
	for _, stem := range discretionaryStems {
		if strings.Contains(folded, stem) {
			return true
		}
	}
	return false
}

// DiscretionaryTotal sums expenses in discretionary categories.
func DiscretionaryTotal(expenses []model.ExpenseRecord) float64 {
	var matched []model.ExpenseRecord
	for _, e := range expenses {
		if IsDiscretionary(e.Category) {
			matched = append(matched, e)
		}
	}
	return TotalExpenses(matched)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// HealthScore blends savings rate and discretionary spending around a
// baseline of 50. Each factor moves the score by at most 40 points.
// The result is always in [0, 100] and is 0 when there is no income.
func HealthScore(income, totalExpenses float64, expenses []model.ExpenseRecord) int {
	if income <= 0 || math.IsNaN(income) {
		return 0
	}

	savingsRate := Savings(income, totalExpenses) / income
	discRate := DiscretionaryTotal(expenses) / math.Max(1, income)

	savingsScore := clamp(math.Round(savingsRate*scoreFactorCap), 0, scoreFactorCap)
	discPenalty := clamp(math.Round(discRate*scoreFactorCap), 0, scoreFactorCap)

	return int(clamp(scoreBaseline+savingsScore-discPenalty, 0, 100))
}

// ScoreMessage returns the one-line verdict for a score.
func ScoreMessage(score int) string {
	switch {
	case score >= 75:
		return MsgGreat
	case score >= 50:
		return MsgOkay
	default:
		return MsgPoor
	}
}

// MeterFraction maps a score onto [0, 1] for the proportional meter.
func MeterFraction(score int) float64 {
	return clamp(float64(score)/100, 0, 1)
}
