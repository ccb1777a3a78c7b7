package money

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{1000, "₹1,000"},
		{1234567, "₹1,234,567"},
		{1234.5, "₹1,234.5"},
		{99.999, "₹100"},
		{0.125, "₹0.13"},
		{-2500, "-₹2,500"},
		{math.NaN(), "₹0"},
		{math.Inf(1), "₹0"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
