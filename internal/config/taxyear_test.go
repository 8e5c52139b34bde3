package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficalc/independence-calculator/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2025, cfg.TaxYear)
	assert.True(t, cfg.InvestmentReturnRate.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, cfg.WithdrawalRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.DefaultSavingsRate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, cfg.AfterTaxSpendingRate.Equal(decimal.NewFromFloat(0.50)))
	assert.True(t, cfg.WealthSpendingRate.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 15, cfg.ProjectionYears)
	assert.Equal(t, 50, cfg.CrossoverHorizonYears)
	assert.Equal(t, 1000, cfg.EnduranceMaxYears)

	require.Len(t, cfg.Brackets, 4)
	single := cfg.Brackets[domain.FilingSingle]
	require.Len(t, single, 7)
	assert.True(t, single[0].Ceiling.Equal(decimal.NewFromInt(11925)))
	assert.True(t, single[0].Rate.Equal(decimal.NewFromFloat(0.10)))
	assert.Nil(t, single[6].Ceiling, "top bracket must be unbounded")
	assert.True(t, single[6].Rate.Equal(decimal.NewFromFloat(0.37)))

	// Default is cached; repeated calls return the same instance.
	assert.Same(t, cfg, Default())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxyear.yaml")
	require.NoError(t, os.WriteFile(path, defaultConfigYAML, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().TaxYear, cfg.TaxYear)
	assert.Equal(t, Default().Brackets, cfg.Brackets)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	base := `
tax_year: 2025
investment_return_rate: 0.07
withdrawal_rate: 0.05
default_savings_rate: 0.10
after_tax_spending_rate: 0.50
wealth_spending_rate: 0.05
projection_years: 15
crossover_horizon_years: 50
endurance_max_years: 1000
`
	allStatuses := `
brackets:
  single: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]
  married_jointly: [{ceiling: 20000, rate: 0.10}, {rate: 0.20}]
  married_separately: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]
  head_of_household: [{ceiling: 15000, rate: 0.10}, {rate: 0.20}]
`

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid minimal config",
			yaml:    base + allStatuses,
			wantErr: "",
		},
		{
			name:    "missing filing status table",
			yaml:    base + "brackets:\n  single: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]\n",
			wantErr: "missing bracket table",
		},
		{
			name: "non-increasing ceilings",
			yaml: base + `
brackets:
  single: [{ceiling: 10000, rate: 0.10}, {ceiling: 10000, rate: 0.12}, {rate: 0.20}]
  married_jointly: [{ceiling: 20000, rate: 0.10}, {rate: 0.20}]
  married_separately: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]
  head_of_household: [{ceiling: 15000, rate: 0.10}, {rate: 0.20}]
`,
			wantErr: "strictly increasing",
		},
		{
			name: "bounded top bracket",
			yaml: base + `
brackets:
  single: [{ceiling: 10000, rate: 0.10}, {ceiling: 99999, rate: 0.20}]
  married_jointly: [{ceiling: 20000, rate: 0.10}, {rate: 0.20}]
  married_separately: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]
  head_of_household: [{ceiling: 15000, rate: 0.10}, {rate: 0.20}]
`,
			wantErr: "must be unbounded",
		},
		{
			name: "rate above one",
			yaml: base + `
brackets:
  single: [{ceiling: 10000, rate: 1.10}, {rate: 0.20}]
  married_jointly: [{ceiling: 20000, rate: 0.10}, {rate: 0.20}]
  married_separately: [{ceiling: 10000, rate: 0.10}, {rate: 0.20}]
  head_of_household: [{ceiling: 15000, rate: 0.10}, {rate: 0.20}]
`,
			wantErr: "outside [0,1]",
		},
		{
			name: "zero projection years",
			yaml: `
tax_year: 2025
investment_return_rate: 0.07
withdrawal_rate: 0.05
default_savings_rate: 0.10
after_tax_spending_rate: 0.50
wealth_spending_rate: 0.05
projection_years: 0
crossover_horizon_years: 50
endurance_max_years: 1000
` + allStatuses,
			wantErr: "projection_years must be positive",
		},
		{
			name:    "missing tax year",
			yaml:    allStatuses + "investment_return_rate: 0.07\nprojection_years: 15\ncrossover_horizon_years: 50\nendurance_max_years: 1000\n",
			wantErr: "tax_year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
