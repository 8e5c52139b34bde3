package config

import (
	"fmt"

	"github.com/ficalc/independence-calculator/internal/domain"
)

// ValidateInputs enforces the boundary contract on a submission before it
// reaches the engines: positive income, state tax within [0, income], a
// recognized filing status, and a non-negative wealth balance when the field
// is present at all. A blank wealth field is legal and means zero.
func ValidateInputs(in domain.UserInputs) error {
	if !in.PreTaxIncome.IsPositive() {
		return fmt.Errorf("pre_tax_income must be positive, got %s", in.PreTaxIncome)
	}
	if in.StateIncomeTax.IsNegative() {
		return fmt.Errorf("state_income_tax must not be negative, got %s", in.StateIncomeTax)
	}
	if in.StateIncomeTax.GreaterThan(in.PreTaxIncome) {
		return fmt.Errorf("state_income_tax %s exceeds pre_tax_income %s", in.StateIncomeTax, in.PreTaxIncome)
	}
	if !in.FilingStatus.Valid() {
		return fmt.Errorf("unknown filing status %q", in.FilingStatus)
	}
	if in.WealthAccount != nil && in.WealthAccount.IsNegative() {
		return fmt.Errorf("wealth_account must not be negative, got %s", in.WealthAccount)
	}
	return nil
}
