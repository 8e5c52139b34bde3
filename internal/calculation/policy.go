package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// TargetPolicyCalculator derives the worker (observed) and investor (target)
// spend/save splits from a submission.
//
// The worker baseline saves a flat fraction of gross income. The investor
// target spends half of after-tax income plus a small fraction of existing
// wealth and saves the rest. A correction pass then guarantees the investor
// path never saves less nor spends more than the worker path.
type TargetPolicyCalculator struct {
	TaxCalc              *FederalTaxCalculator
	DefaultSavingsRate   decimal.Decimal
	AfterTaxSpendingRate decimal.Decimal
	WealthSpendingRate   decimal.Decimal
}

// NewTargetPolicyCalculator builds a policy calculator from a tax-year
// configuration and a federal tax calculator.
func NewTargetPolicyCalculator(cfg *config.TaxYearConfig, taxCalc *FederalTaxCalculator) *TargetPolicyCalculator {
	return &TargetPolicyCalculator{
		TaxCalc:              taxCalc,
		DefaultSavingsRate:   cfg.DefaultSavingsRate,
		AfterTaxSpendingRate: cfg.AfterTaxSpendingRate,
		WealthSpendingRate:   cfg.WealthSpendingRate,
	}
}

// Calculate produces the full calculation record for a submission. The two
// correction steps are ordered deliberately: the saving floor is applied
// before the spending cap, and each recomputes its counterpart. Swapping them
// changes the output.
func (tpc *TargetPolicyCalculator) Calculate(in domain.UserInputs) domain.CalculationResult {
	federalTax := tpc.TaxCalc.CalculateFederalTax(in.PreTaxIncome, in.FilingStatus)
	totalTax := federalTax.Add(in.StateIncomeTax)
	// Not clamped: a pathological state tax can push this negative.
	afterTaxIncome := in.PreTaxIncome.Sub(totalTax)
	wealth := in.Wealth()

	estimatedSaving := in.PreTaxIncome.Mul(tpc.DefaultSavingsRate)
	estimatedSpending := afterTaxIncome.Sub(estimatedSaving)

	targetSpending := tpc.AfterTaxSpendingRate.Mul(afterTaxIncome).
		Add(tpc.WealthSpendingRate.Mul(wealth))
	targetSaving := decimal.Max(decimal.Zero, afterTaxIncome.Sub(targetSpending))

	// Investor never does worse than worker: floor the saving first, then cap
	// the (possibly recomputed) spending.
	if targetSaving.LessThan(estimatedSaving) {
		targetSaving = estimatedSaving
		targetSpending = afterTaxIncome.Sub(targetSaving)
	}
	if targetSpending.GreaterThan(estimatedSpending) {
		targetSpending = estimatedSpending
		targetSaving = afterTaxIncome.Sub(targetSpending)
	}

	return domain.CalculationResult{
		FederalTax:        federalTax,
		TotalTax:          moneyutil.RoundDollars(totalTax),
		AfterTaxIncome:    afterTaxIncome,
		TargetSpending:    moneyutil.RoundDollars(targetSpending),
		TargetSaving:      moneyutil.RoundDollars(targetSaving),
		EstimatedSaving:   moneyutil.RoundDollars(estimatedSaving),
		EstimatedSpending: moneyutil.RoundDollars(estimatedSpending),
		WealthAccount:     moneyutil.RoundDollars(wealth),
	}
}
