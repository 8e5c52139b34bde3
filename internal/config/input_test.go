package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficalc/independence-calculator/internal/domain"
)

func TestValidateInputs(t *testing.T) {
	wealth := decimal.NewFromInt(50000)
	negativeWealth := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		in      domain.UserInputs
		wantErr string
	}{
		{
			name: "valid with wealth",
			in: domain.UserInputs{
				PreTaxIncome:   decimal.NewFromInt(100000),
				WealthAccount:  &wealth,
				StateIncomeTax: decimal.NewFromInt(3000),
				FilingStatus:   domain.FilingSingle,
			},
		},
		{
			name: "valid with blank wealth",
			in: domain.UserInputs{
				PreTaxIncome: decimal.NewFromInt(100000),
				FilingStatus: domain.FilingHeadOfHousehold,
			},
		},
		{
			name: "zero income",
			in: domain.UserInputs{
				PreTaxIncome: decimal.Zero,
				FilingStatus: domain.FilingSingle,
			},
			wantErr: "pre_tax_income must be positive",
		},
		{
			name: "negative state tax",
			in: domain.UserInputs{
				PreTaxIncome:   decimal.NewFromInt(100000),
				StateIncomeTax: decimal.NewFromInt(-100),
				FilingStatus:   domain.FilingSingle,
			},
			wantErr: "state_income_tax must not be negative",
		},
		{
			name: "state tax exceeding income",
			in: domain.UserInputs{
				PreTaxIncome:   decimal.NewFromInt(50000),
				StateIncomeTax: decimal.NewFromInt(60000),
				FilingStatus:   domain.FilingSingle,
			},
			wantErr: "exceeds pre_tax_income",
		},
		{
			name: "unknown filing status",
			in: domain.UserInputs{
				PreTaxIncome: decimal.NewFromInt(100000),
				FilingStatus: domain.FilingStatus("widowed"),
			},
			wantErr: "unknown filing status",
		},
		{
			name: "negative wealth",
			in: domain.UserInputs{
				PreTaxIncome:  decimal.NewFromInt(100000),
				WealthAccount: &negativeWealth,
				FilingStatus:  domain.FilingSingle,
			},
			wantErr: "wealth_account must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputs(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
