// Package money formats rupee amounts for display.
package money

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Symbol prefixes every monetary amount.
const Symbol = "₹"

// Format renders x with the currency symbol and thousands grouping,
// keeping at most two decimal places. NaN and infinities render as zero.
// e.g., 1234567 -> "₹1,234,567", 1234.5 -> "₹1,234.5"
func Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	rounded := decimal.NewFromFloat(x).Round(2).InexactFloat64()
	if rounded < 0 {
		return "-" + Symbol + humanize.CommafWithDigits(-rounded, 2)
	}
	return Symbol + humanize.CommafWithDigits(rounded, 2)
}
