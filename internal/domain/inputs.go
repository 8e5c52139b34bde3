package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FilingStatus is the federal filing status used to select a bracket table.
// It is a closed enum; anything else defaults to zero tax at the engine
// boundary and is rejected by input validation before that.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_jointly"
	FilingMarriedSeparately FilingStatus = "married_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// FilingStatuses lists every recognized filing status in a fixed order.
func FilingStatuses() []FilingStatus {
	return []FilingStatus{
		FilingSingle,
		FilingMarriedJointly,
		FilingMarriedSeparately,
		FilingHeadOfHousehold,
	}
}

// Valid reports whether the status is one of the four recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparately, FilingHeadOfHousehold:
		return true
	}
	return false
}

// ParseFilingStatus converts a string into a FilingStatus, rejecting unknown values.
func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(s)
	if !fs.Valid() {
		return "", fmt.Errorf("unknown filing status %q", s)
	}
	return fs, nil
}

// UserInputs is one complete calculator submission. It is immutable once
// accepted; a new submission replaces it wholesale.
//
// WealthAccount is a pointer so a blank field (nil) is distinguishable from
// an explicit zero; both normalize to zero for the math.
type UserInputs struct {
	PreTaxIncome   decimal.Decimal  `json:"pre_tax_income" yaml:"pre_tax_income"`
	WealthAccount  *decimal.Decimal `json:"wealth_account,omitempty" yaml:"wealth_account,omitempty"`
	StateIncomeTax decimal.Decimal  `json:"state_income_tax" yaml:"state_income_tax"`
	FilingStatus   FilingStatus     `json:"filing_status" yaml:"filing_status"`
}

// UnmarshalYAML decodes through a float-typed alias, since yaml.v3 has no
// native decimal support. An omitted wealth_account stays nil.
func (ui *UserInputs) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		PreTaxIncome   float64  `yaml:"pre_tax_income"`
		WealthAccount  *float64 `yaml:"wealth_account"`
		StateIncomeTax float64  `yaml:"state_income_tax"`
		FilingStatus   string   `yaml:"filing_status"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	ui.PreTaxIncome = decimal.NewFromFloat(aux.PreTaxIncome)
	ui.StateIncomeTax = decimal.NewFromFloat(aux.StateIncomeTax)
	ui.FilingStatus = FilingStatus(aux.FilingStatus)
	ui.WealthAccount = nil
	if aux.WealthAccount != nil {
		wealth := decimal.NewFromFloat(*aux.WealthAccount)
		ui.WealthAccount = &wealth
	}
	return nil
}

// Wealth returns the wealth account balance, treating a blank field as zero.
func (ui UserInputs) Wealth() decimal.Decimal {
	if ui.WealthAccount == nil {
		return decimal.Zero
	}
	return *ui.WealthAccount
}
