package domain

import (
	"github.com/shopspring/decimal"
)

// Sentinel years. The two states are semantically distinct and must never be
// compared against each other, even though both serialize as -1 for the
// frontend.
const (
	// EnduranceIndefinite means investment growth on the asset base covers
	// spending forever; the assets never deplete.
	EnduranceIndefinite = -1

	// CrossoverNever means passive income never reaches earned income within
	// the crossover horizon.
	CrossoverNever = -1
)

// CalculationResult is the derived record for one submission, recomputed in
// full every time. All money fields are whole dollars except AfterTaxIncome,
// which keeps fractional precision for downstream math.
type CalculationResult struct {
	FederalTax        decimal.Decimal `json:"federal_tax"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	AfterTaxIncome    decimal.Decimal `json:"after_tax_income"`
	TargetSpending    decimal.Decimal `json:"target_spending"`
	TargetSaving      decimal.Decimal `json:"target_saving"`
	EstimatedSaving   decimal.Decimal `json:"estimated_saving"`
	EstimatedSpending decimal.Decimal `json:"estimated_spending"`
	WealthAccount     decimal.Decimal `json:"wealth_account"`
}

// ProjectionSeries is a year-by-year sequence of end-of-year balances, whole
// dollars, one element per projected year.
type ProjectionSeries []decimal.Decimal

// FinalBalance returns the last element of the series, or zero for an empty series.
func (ps ProjectionSeries) FinalBalance() decimal.Decimal {
	if len(ps) == 0 {
		return decimal.Zero
	}
	return ps[len(ps)-1]
}

// CrossoverRecord is one simulated year of the passive-vs-earned income race.
type CrossoverRecord struct {
	Year          int             `json:"year"`
	Assets        decimal.Decimal `json:"assets"`
	PassiveIncome decimal.Decimal `json:"passive_income"`
	EarnedIncome  decimal.Decimal `json:"earned_income"`
}

// CrossoverResult holds the crossover year (CrossoverNever if passive income
// never catches up) and the full yearly record set, year 0 included.
type CrossoverResult struct {
	CrossoverYear int               `json:"crossover_year"`
	Records       []CrossoverRecord `json:"records"`
}

// Crossed reports whether a crossover year was found.
func (cr CrossoverResult) Crossed() bool {
	return cr.CrossoverYear != CrossoverNever
}

// CrossoverComparison pairs the worker and investor crossover runs.
type CrossoverComparison struct {
	Worker   CrossoverResult `json:"worker"`
	Investor CrossoverResult `json:"investor"`
}

// EnduranceMetrics bundles the asset-endurance figures for both paths.
// "Current" evaluates spending against today's wealth; "Future" against the
// 15-year projected wealth. Endurance values are years until depletion or
// EnduranceIndefinite.
type EnduranceMetrics struct {
	WorkerCurrentEndurance   int             `json:"worker_current_endurance"`
	InvestorCurrentEndurance int             `json:"investor_current_endurance"`
	WorkerFutureEndurance    int             `json:"worker_future_endurance"`
	InvestorFutureEndurance  int             `json:"investor_future_endurance"`
	WorkerWealth15Yr         decimal.Decimal `json:"worker_wealth_15yr"`
	InvestorWealth15Yr       decimal.Decimal `json:"investor_wealth_15yr"`
}

// ProjectionBands are Monte Carlo percentile bands over the terminal balance
// of the projection horizon.
type ProjectionBands struct {
	Trials int             `json:"trials"`
	Years  int             `json:"years"`
	P10    decimal.Decimal `json:"p10"`
	P25    decimal.Decimal `json:"p25"`
	P50    decimal.Decimal `json:"p50"`
	P75    decimal.Decimal `json:"p75"`
	P90    decimal.Decimal `json:"p90"`
}
