package calculation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
)

// CalculationEngine orchestrates the five calculators over one tax-year
// configuration. Every method is deterministic and side-effect free; calling
// RunSession twice with identical inputs yields identical output (the session
// identity aside).
type CalculationEngine struct {
	Config         *config.TaxYearConfig
	TaxCalc        *FederalTaxCalculator
	PolicyCalc     *TargetPolicyCalculator
	ProjectionCalc *ProjectionCalculator
	EnduranceCalc  *EnduranceCalculator
	CrossoverCalc  *CrossoverCalculator
	Simulator      *ProjectionSimulator
	Logger         Logger
}

// NewCalculationEngine creates an engine on the embedded default tax year.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(config.Default())
}

// NewCalculationEngineWithConfig creates an engine for an explicit tax-year
// configuration. The configuration must already be validated.
func NewCalculationEngineWithConfig(cfg *config.TaxYearConfig) *CalculationEngine {
	taxCalc := NewFederalTaxCalculator(cfg)
	return &CalculationEngine{
		Config:         cfg,
		TaxCalc:        taxCalc,
		PolicyCalc:     NewTargetPolicyCalculator(cfg, taxCalc),
		ProjectionCalc: NewProjectionCalculator(cfg),
		EnduranceCalc:  NewEnduranceCalculator(cfg),
		CrossoverCalc:  NewCrossoverCalculator(cfg),
		Simulator:      NewProjectionSimulator(cfg, time.Now().UnixNano()),
		Logger:         NopLogger{},
	}
}

// SetLogger sets the logger for the engine. A nil logger restores the no-op.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunSession executes the full pipeline for pre-validated inputs and returns
// the complete derived state for one calculator session. The caller owns the
// session and replaces it wholesale on resubmission.
func (ce *CalculationEngine) RunSession(in domain.UserInputs) (*domain.Session, error) {
	result := ce.PolicyCalc.Calculate(in)
	ce.Logger.Debugf("calculated policy record: federal=%s total=%s afterTax=%s",
		result.FederalTax, result.TotalTax, result.AfterTaxIncome)

	horizon := ce.Config.ProjectionYears
	workerSeries := ce.ProjectionCalc.CalculateProjection(result.EstimatedSaving, horizon, result.WealthAccount)
	investorSeries := ce.ProjectionCalc.CalculateProjection(result.TargetSaving, horizon, result.WealthAccount)

	endurance, err := ce.calculateEnduranceMetrics(result, workerSeries, investorSeries)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:                 uuid.New(),
		CreatedAt:          time.Now().UTC(),
		TaxYear:            ce.Config.TaxYear,
		Inputs:             in,
		Result:             result,
		WorkerProjection:   workerSeries,
		InvestorProjection: investorSeries,
		// The slider starts at the investor target.
		AdjustedProjection: investorSeries,
		AdjustedSaving:     result.TargetSaving,
		Crossovers:         ce.CrossoverCalc.CalculateAllCrossoverPoints(result),
		Endurance:          endurance,
		Bands:              ce.Simulator.Run(result.TargetSaving, result.WealthAccount),
	}
	return session, nil
}

// AdjustProjection recomputes the slider-driven series for an existing
// session without touching any other derived state. The requested saving is
// clamped to [0, afterTaxIncome].
func (ce *CalculationEngine) AdjustProjection(session *domain.Session, requestedSaving decimal.Decimal) {
	series, used := ce.ProjectionCalc.CalculateAdjustedProjection(
		requestedSaving, session.Result.AfterTaxIncome, session.Result.WealthAccount)
	session.AdjustedProjection = series
	session.AdjustedSaving = used
}

func (ce *CalculationEngine) calculateEnduranceMetrics(result domain.CalculationResult, worker, investor domain.ProjectionSeries) (domain.EnduranceMetrics, error) {
	var m domain.EnduranceMetrics
	var err error

	wealth := result.WealthAccount
	m.WorkerWealth15Yr = worker.FinalBalance()
	m.InvestorWealth15Yr = investor.FinalBalance()

	if m.WorkerCurrentEndurance, err = ce.EnduranceCalc.CalculateAssetEndurance(result.EstimatedSpending, wealth); err != nil {
		return m, fmt.Errorf("worker current endurance: %w", err)
	}
	if m.InvestorCurrentEndurance, err = ce.EnduranceCalc.CalculateAssetEndurance(result.TargetSpending, wealth); err != nil {
		return m, fmt.Errorf("investor current endurance: %w", err)
	}
	if m.WorkerFutureEndurance, err = ce.EnduranceCalc.CalculateAssetEndurance(result.EstimatedSpending, m.WorkerWealth15Yr); err != nil {
		return m, fmt.Errorf("worker future endurance: %w", err)
	}
	if m.InvestorFutureEndurance, err = ce.EnduranceCalc.CalculateAssetEndurance(result.TargetSpending, m.InvestorWealth15Yr); err != nil {
		return m, fmt.Errorf("investor future endurance: %w", err)
	}
	return m, nil
}
