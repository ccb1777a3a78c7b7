// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/theirongolddev/sbudget/internal/money"
)

// TimestampLayout is used for expense timestamps in listings.
const TimestampLayout = "2 Jan 2006, 15:04"

// FormatMoney formats an amount as rupees, e.g. "₹1,234.5".
func FormatMoney(x float64) string {
	return money.Format(x)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatParam renders a FIRE input the way its value pill shows it:
// inflation as "6.0%", ages as whole years, everything else as money.
func FormatParam(key string, v float64) string {
	switch key {
	case "inflation":
		return fmt.Sprintf("%.1f%%", v)
	case "currentAge", "retirementAge", "lifeExpectancy":
		return strconv.Itoa(int(math.Round(v)))
	}
	return FormatMoney(math.Round(v))
}

// FormatTimestamp renders an expense time in local time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(TimestampLayout)
}
