// Package moneyutil provides whole-dollar rounding and formatting helpers
// shared by the calculation engines and the report formatters.
package moneyutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundDollars rounds an amount to the nearest whole dollar, half away from zero.
// Every money value that crosses the presentation boundary goes through this.
func RoundDollars(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Clamp bounds a value to the inclusive range [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// FormatDollars renders a whole-dollar amount as "$1,234,567" with thousands
// separators. Fractional cents are rounded away first.
func FormatDollars(d decimal.Decimal) string {
	s := RoundDollars(d).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatRate renders a fraction as a percentage with two decimals, e.g. 0.0713 -> "7.13%".
func FormatRate(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
