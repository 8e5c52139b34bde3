package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// CrossoverCalculator simulates asset growth plus constant annual savings and
// finds the first year passive income (withdrawal rate times assets) meets or
// exceeds earned income.
type CrossoverCalculator struct {
	ReturnRate     decimal.Decimal
	WithdrawalRate decimal.Decimal
	HorizonYears   int
}

// NewCrossoverCalculator builds a crossover calculator from a tax-year
// configuration.
func NewCrossoverCalculator(cfg *config.TaxYearConfig) *CrossoverCalculator {
	return &CrossoverCalculator{
		ReturnRate:     cfg.InvestmentReturnRate,
		WithdrawalRate: cfg.WithdrawalRate,
		HorizonYears:   cfg.CrossoverHorizonYears,
	}
}

// CalculateCrossoverPoint runs the simulation. Year 0 evaluates today's
// assets; a crossover at year 0 means already financially independent. From
// year 1 on, assets grow first and the year's savings land afterwards —
// the opposite ordering from ProjectionCalculator, preserved on purpose.
// The first crossing wins; if no year within the horizon crosses, the year
// stays domain.CrossoverNever.
func (cc *CrossoverCalculator) CalculateCrossoverPoint(earnedIncome, currentAssets, annualSavings decimal.Decimal) domain.CrossoverResult {
	growth := decimal.NewFromInt(1).Add(cc.ReturnRate)
	records := make([]domain.CrossoverRecord, 0, cc.HorizonYears+1)

	assets := currentAssets
	passive := assets.Mul(cc.WithdrawalRate)
	crossoverYear := domain.CrossoverNever
	if passive.GreaterThanOrEqual(earnedIncome) {
		crossoverYear = 0
	}
	records = append(records, newCrossoverRecord(0, assets, passive, earnedIncome))

	for year := 1; year <= cc.HorizonYears; year++ {
		assets = assets.Mul(growth).Add(annualSavings)
		passive = assets.Mul(cc.WithdrawalRate)
		records = append(records, newCrossoverRecord(year, assets, passive, earnedIncome))
		if crossoverYear == domain.CrossoverNever && passive.GreaterThanOrEqual(earnedIncome) {
			crossoverYear = year
		}
	}

	return domain.CrossoverResult{CrossoverYear: crossoverYear, Records: records}
}

// CalculateAllCrossoverPoints runs the simulation for both paths against the
// same earned income and wealth: the worker path with the estimated saving
// and the investor path with the target saving.
func (cc *CrossoverCalculator) CalculateAllCrossoverPoints(result domain.CalculationResult) domain.CrossoverComparison {
	return domain.CrossoverComparison{
		Worker:   cc.CalculateCrossoverPoint(result.AfterTaxIncome, result.WealthAccount, result.EstimatedSaving),
		Investor: cc.CalculateCrossoverPoint(result.AfterTaxIncome, result.WealthAccount, result.TargetSaving),
	}
}

func newCrossoverRecord(year int, assets, passive, earned decimal.Decimal) domain.CrossoverRecord {
	return domain.CrossoverRecord{
		Year:          year,
		Assets:        moneyutil.RoundDollars(assets),
		PassiveIncome: moneyutil.RoundDollars(passive),
		EarnedIncome:  moneyutil.RoundDollars(earned),
	}
}
