package calculation

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// ProjectionSimulator runs Monte Carlo trials of the projection recurrence
// with per-year returns drawn from a normal distribution around the
// configured mean, reporting percentile bands over the terminal balance.
// Results are deterministic per seed.
type ProjectionSimulator struct {
	MeanReturn   decimal.Decimal
	ReturnStddev decimal.Decimal
	Trials       int
	Years        int
	Seed         int64
}

// NewProjectionSimulator builds a simulator from a tax-year configuration.
func NewProjectionSimulator(cfg *config.TaxYearConfig, seed int64) *ProjectionSimulator {
	return &ProjectionSimulator{
		MeanReturn:   cfg.InvestmentReturnRate,
		ReturnStddev: cfg.ReturnRateStddev,
		Trials:       cfg.MonteCarloTrials,
		Years:        cfg.ProjectionYears,
		Seed:         seed,
	}
}

// Run simulates the contribute-then-grow recurrence Trials times and returns
// the terminal-balance bands, or nil when the simulator is disabled
// (zero trials). The trial math runs in float64; only the percentile outputs
// are converted back to whole dollars.
func (ps *ProjectionSimulator) Run(annualSaving, startingBalance decimal.Decimal) *domain.ProjectionBands {
	if ps.Trials <= 0 || ps.Years <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(ps.Seed))
	mean, _ := ps.MeanReturn.Float64()
	stddev, _ := ps.ReturnStddev.Float64()
	saving, _ := annualSaving.Float64()
	start, _ := startingBalance.Float64()

	finals := make([]float64, ps.Trials)
	for t := 0; t < ps.Trials; t++ {
		balance := start
		for year := 0; year < ps.Years; year++ {
			factor := 1 + mean + stddev*rng.NormFloat64()
			if factor < 0 {
				// A year cannot lose more than the whole balance.
				factor = 0
			}
			balance = (balance + saving) * factor
		}
		finals[t] = balance
	}
	sort.Float64s(finals)

	return &domain.ProjectionBands{
		Trials: ps.Trials,
		Years:  ps.Years,
		P10:    percentile(finals, 0.10),
		P25:    percentile(finals, 0.25),
		P50:    percentile(finals, 0.50),
		P75:    percentile(finals, 0.75),
		P90:    percentile(finals, 0.90),
	}
}

func percentile(sorted []float64, q float64) decimal.Decimal {
	idx := int(q * float64(len(sorted)-1))
	return moneyutil.RoundDollars(decimal.NewFromFloat(sorted[idx]))
}
