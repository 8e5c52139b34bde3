package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
)

// EnduranceCalculator determines how long an asset base sustains a fixed
// annual spending level, with the remainder growing at the investment return
// rate each year.
type EnduranceCalculator struct {
	ReturnRate decimal.Decimal
	// MaxYears bounds the loop so spending infinitesimally above the
	// sustainable threshold cannot iterate forever.
	MaxYears int
}

// NewEnduranceCalculator builds an endurance calculator from a tax-year
// configuration.
func NewEnduranceCalculator(cfg *config.TaxYearConfig) *EnduranceCalculator {
	return &EnduranceCalculator{
		ReturnRate: cfg.InvestmentReturnRate,
		MaxYears:   cfg.EnduranceMaxYears,
	}
}

// CalculateAssetEndurance returns the year in which the assets run out, or
// domain.EnduranceIndefinite when investment growth alone covers the spending
// forever. Each year the spending is withdrawn and the remainder grows by
// (1 + return rate); depletion is detected before growth. Exceeding MaxYears
// is an error rather than a fabricated depletion year.
func (ec *EnduranceCalculator) CalculateAssetEndurance(annualSpending, assetBase decimal.Decimal) (int, error) {
	growth := decimal.NewFromInt(1).Add(ec.ReturnRate)
	base := assetBase
	for elapsed := 0; elapsed < ec.MaxYears; elapsed++ {
		if annualSpending.LessThanOrEqual(base.Mul(ec.ReturnRate)) {
			return domain.EnduranceIndefinite, nil
		}
		remainder := base.Sub(annualSpending)
		if !remainder.IsPositive() {
			return elapsed + 1, nil
		}
		base = remainder.Mul(growth)
	}
	return 0, fmt.Errorf("asset endurance did not resolve within %d years", ec.MaxYears)
}
