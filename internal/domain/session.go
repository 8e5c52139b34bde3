package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is the complete derived state for one submission: the calculation
// record plus every series and metric the presentation layer renders. There
// is exactly one live session per calculator; a resubmission produces a new
// Session and the old one is discarded whole. Sessions are never persisted.
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	TaxYear   int       `json:"tax_year"`

	Inputs UserInputs        `json:"inputs"`
	Result CalculationResult `json:"result"`

	WorkerProjection   ProjectionSeries `json:"worker_projection"`
	InvestorProjection ProjectionSeries `json:"investor_projection"`
	// AdjustedProjection is driven by the spending slider; it defaults to the
	// investor series and is recomputed per slider value.
	AdjustedProjection ProjectionSeries `json:"adjusted_projection"`
	// AdjustedSaving is the (clamped) annual saving the adjusted series used.
	AdjustedSaving decimal.Decimal `json:"adjusted_saving"`

	Crossovers CrossoverComparison `json:"crossovers"`
	Endurance  EnduranceMetrics    `json:"endurance"`

	Bands *ProjectionBands `json:"bands,omitempty"`
}
