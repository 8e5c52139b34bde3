package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficalc/independence-calculator/internal/config"
)

// TestCalculateProjection checks the contribute-then-grow recurrence at 7%
func TestCalculateProjection(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())

	series := calc.CalculateProjection(dec(10000), 15, decimal.Zero)
	require.Len(t, series, 15)

	// year 1: (0 + 10000) * 1.07 = 10700
	assert.True(t, series[0].Equal(dec(10700)), "year 1 = %s", series[0])
	// year 2: (10700 + 10000) * 1.07 = 22149
	assert.True(t, series[1].Equal(dec(22149)), "year 2 = %s", series[1])

	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].GreaterThan(series[i-1]),
			"series must be strictly increasing at year %d", i+1)
	}
	// compounding beats 15 * 10000 of raw principal
	assert.True(t, series.FinalBalance().GreaterThan(dec(150000)),
		"final balance %s", series.FinalBalance())
}

// TestContributionBeforeGrowth pins the ordering: the year's saving earns the
// year's return. With growth-then-contribute year 1 would be 10000, not 10700.
func TestContributionBeforeGrowth(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())

	series := calc.CalculateProjection(dec(10000), 1, decimal.Zero)
	require.Len(t, series, 1)
	assert.True(t, series[0].Equal(dec(10700)), "year 1 = %s", series[0])
}

func TestCalculateHorizonValue(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())

	series := calc.CalculateProjection(dec(10000), calc.HorizonYears, dec(50000))
	final := calc.CalculateHorizonValue(dec(10000), dec(50000))
	assert.True(t, final.Equal(series.FinalBalance()),
		"horizon value %s != final series element %s", final, series.FinalBalance())
}

func TestCalculateProjectionStartingBalance(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())

	// year 1: (100000 + 0) * 1.07 = 107000
	series := calc.CalculateProjection(decimal.Zero, 3, dec(100000))
	require.Len(t, series, 3)
	assert.True(t, series[0].Equal(dec(107000)), "year 1 = %s", series[0])
}

func TestCalculateProjectionZeroYears(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())
	assert.Empty(t, calc.CalculateProjection(dec(10000), 0, decimal.Zero))
}

// TestCalculateAdjustedProjection verifies the slider clamp to [0, afterTaxIncome]
func TestCalculateAdjustedProjection(t *testing.T) {
	calc := NewProjectionCalculator(config.Default())
	afterTax := dec(80086)

	tests := []struct {
		name      string
		requested decimal.Decimal
		wantUsed  decimal.Decimal
	}{
		{"negative clamps to zero", dec(-5000), decimal.Zero},
		{"above after-tax clamps down", dec(100000), afterTax},
		{"in range passes through", dec(25000), dec(25000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, used := calc.CalculateAdjustedProjection(tt.requested, afterTax, decimal.Zero)
			assert.True(t, used.Equal(tt.wantUsed), "used %s", used)
			assert.Len(t, series, calc.HorizonYears)

			direct := calc.CalculateProjection(tt.wantUsed, calc.HorizonYears, decimal.Zero)
			assert.Equal(t, direct, series)
		})
	}

	// negative after-tax income collapses the range to [0, 0]
	series, used := calc.CalculateAdjustedProjection(dec(10000), dec(-500), decimal.Zero)
	assert.True(t, used.IsZero(), "used %s", used)
	assert.True(t, series.FinalBalance().IsZero())
}
