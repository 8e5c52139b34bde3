package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// ProjectionCalculator compounds a fixed annual contribution at a fixed
// annual return. The contribution lands at the start of each year, before
// growth is applied; the crossover simulation uses the opposite convention
// and the two must not be unified.
type ProjectionCalculator struct {
	ReturnRate   decimal.Decimal
	HorizonYears int
}

// NewProjectionCalculator builds a projection calculator from a tax-year
// configuration.
func NewProjectionCalculator(cfg *config.TaxYearConfig) *ProjectionCalculator {
	return &ProjectionCalculator{
		ReturnRate:   cfg.InvestmentReturnRate,
		HorizonYears: cfg.ProjectionYears,
	}
}

// CalculateProjection produces the year-by-year balance series: each year the
// contribution is added, the balance grows by (1 + return rate), and the
// whole-dollar balance is recorded. The running balance itself stays
// unrounded between years.
func (pc *ProjectionCalculator) CalculateProjection(annualSaving decimal.Decimal, years int, startingBalance decimal.Decimal) domain.ProjectionSeries {
	if years <= 0 {
		return domain.ProjectionSeries{}
	}
	growth := decimal.NewFromInt(1).Add(pc.ReturnRate)
	series := make(domain.ProjectionSeries, 0, years)
	balance := startingBalance
	for year := 1; year <= years; year++ {
		balance = balance.Add(annualSaving).Mul(growth)
		series = append(series, moneyutil.RoundDollars(balance))
	}
	return series
}

// CalculateHorizonValue returns only the final balance of the configured
// projection horizon; it equals the last element of CalculateProjection with
// the same inputs.
func (pc *ProjectionCalculator) CalculateHorizonValue(annualSaving, startingBalance decimal.Decimal) decimal.Decimal {
	return pc.CalculateProjection(annualSaving, pc.HorizonYears, startingBalance).FinalBalance()
}

// CalculateAdjustedProjection runs the horizon projection with a
// caller-chosen saving clamped to [0, afterTaxIncome]. It returns the series
// and the saving actually used, so slider ticks round-trip the clamp.
func (pc *ProjectionCalculator) CalculateAdjustedProjection(requestedSaving, afterTaxIncome, startingBalance decimal.Decimal) (domain.ProjectionSeries, decimal.Decimal) {
	upper := decimal.Max(decimal.Zero, afterTaxIncome)
	saving := moneyutil.Clamp(requestedSaving, decimal.Zero, upper)
	return pc.CalculateProjection(saving, pc.HorizonYears, startingBalance), saving
}
