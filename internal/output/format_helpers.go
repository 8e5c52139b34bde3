package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/domain"
)

// FormatEnduranceYears renders an endurance figure, mapping the indefinite
// sentinel to a label.
func FormatEnduranceYears(years int) string {
	if years == domain.EnduranceIndefinite {
		return "indefinite"
	}
	return fmt.Sprintf("%d yrs", years)
}

// FormatCrossoverYear renders a crossover year, mapping the never sentinel to
// a label and year zero to the already-independent case.
func FormatCrossoverYear(year int) string {
	switch {
	case year == domain.CrossoverNever:
		return "never"
	case year == 0:
		return "already independent"
	default:
		return fmt.Sprintf("year %d", year)
	}
}

// EffectiveRate is tax/income, or zero for non-positive income. Mirrors the
// engine's defined default so formatters need no engine handle.
func EffectiveRate(tax, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return tax.Div(income)
}
