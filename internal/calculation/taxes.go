package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// TaxBracket is one rung of a marginal bracket table. A nil Ceiling marks the
// unbounded top bracket that absorbs all remaining income.
type TaxBracket struct {
	Ceiling *decimal.Decimal
	Rate    decimal.Decimal
}

// FederalTaxCalculator computes progressive federal income tax from
// per-filing-status bracket tables.
type FederalTaxCalculator struct {
	Year   int
	Tables map[domain.FilingStatus][]TaxBracket
}

// NewFederalTaxCalculator builds a calculator from a tax-year configuration.
func NewFederalTaxCalculator(cfg *config.TaxYearConfig) *FederalTaxCalculator {
	tables := make(map[domain.FilingStatus][]TaxBracket, len(cfg.Brackets))
	for status, rungs := range cfg.Brackets {
		table := make([]TaxBracket, len(rungs))
		for i, b := range rungs {
			table[i] = TaxBracket{Ceiling: b.Ceiling, Rate: b.Rate}
		}
		tables[status] = table
	}
	return &FederalTaxCalculator{Year: cfg.TaxYear, Tables: tables}
}

// CalculateFederalTax walks the bracket table for the filing status in
// ascending order, taxing the slice of income inside each bracket at that
// bracket's marginal rate, and stops at the first bracket whose ceiling
// covers the income. Non-positive income or an unrecognized filing status
// yields zero tax; that is the defined default, not an error. The result is
// rounded to whole dollars, half away from zero.
func (ftc *FederalTaxCalculator) CalculateFederalTax(income decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	table, ok := ftc.Tables[status]
	if !ok {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	floor := decimal.Zero
	for _, bracket := range table {
		upper := income
		if bracket.Ceiling != nil {
			upper = decimal.Min(income, *bracket.Ceiling)
		}
		portion := upper.Sub(floor)
		if portion.IsPositive() {
			totalTax = totalTax.Add(portion.Mul(bracket.Rate))
		}
		if bracket.Ceiling == nil || income.LessThanOrEqual(*bracket.Ceiling) {
			break
		}
		floor = *bracket.Ceiling
	}

	return moneyutil.RoundDollars(totalTax)
}

// CalculateEffectiveRate returns tax/income as an unrounded fraction, or zero
// for non-positive income.
func (ftc *FederalTaxCalculator) CalculateEffectiveRate(tax, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return tax.Div(income)
}
