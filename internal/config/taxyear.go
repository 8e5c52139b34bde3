package config

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ficalc/independence-calculator/internal/domain"
)

//go:embed default-config.yaml
var defaultConfigYAML []byte

// Bracket is one rung of a federal bracket table. A nil Ceiling marks the
// unbounded top bracket.
type Bracket struct {
	Ceiling *decimal.Decimal
	Rate    decimal.Decimal
}

// TaxYearConfig is the static configuration for one tax year: policy rates,
// horizons, and the per-filing-status bracket tables. It is loaded once,
// validated, and never mutated.
type TaxYearConfig struct {
	TaxYear int

	InvestmentReturnRate decimal.Decimal
	WithdrawalRate       decimal.Decimal
	DefaultSavingsRate   decimal.Decimal
	AfterTaxSpendingRate decimal.Decimal
	WealthSpendingRate   decimal.Decimal
	ReturnRateStddev     decimal.Decimal

	ProjectionYears       int
	CrossoverHorizonYears int
	EnduranceMaxYears     int
	MonteCarloTrials      int

	Brackets map[domain.FilingStatus][]Bracket
}

// UnmarshalYAML decodes through a float-typed alias and converts to decimal,
// since yaml.v3 has no native decimal support.
func (c *TaxYearConfig) UnmarshalYAML(value *yaml.Node) error {
	type bracketAlias struct {
		Ceiling *float64 `yaml:"ceiling"`
		Rate    float64  `yaml:"rate"`
	}
	type alias struct {
		TaxYear               int                       `yaml:"tax_year"`
		InvestmentReturnRate  float64                   `yaml:"investment_return_rate"`
		WithdrawalRate        float64                   `yaml:"withdrawal_rate"`
		DefaultSavingsRate    float64                   `yaml:"default_savings_rate"`
		AfterTaxSpendingRate  float64                   `yaml:"after_tax_spending_rate"`
		WealthSpendingRate    float64                   `yaml:"wealth_spending_rate"`
		ReturnRateStddev      float64                   `yaml:"return_rate_stddev"`
		ProjectionYears       int                       `yaml:"projection_years"`
		CrossoverHorizonYears int                       `yaml:"crossover_horizon_years"`
		EnduranceMaxYears     int                       `yaml:"endurance_max_years"`
		MonteCarloTrials      int                       `yaml:"monte_carlo_trials"`
		Brackets              map[string][]bracketAlias `yaml:"brackets"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.TaxYear = aux.TaxYear
	c.InvestmentReturnRate = decimal.NewFromFloat(aux.InvestmentReturnRate)
	c.WithdrawalRate = decimal.NewFromFloat(aux.WithdrawalRate)
	c.DefaultSavingsRate = decimal.NewFromFloat(aux.DefaultSavingsRate)
	c.AfterTaxSpendingRate = decimal.NewFromFloat(aux.AfterTaxSpendingRate)
	c.WealthSpendingRate = decimal.NewFromFloat(aux.WealthSpendingRate)
	c.ReturnRateStddev = decimal.NewFromFloat(aux.ReturnRateStddev)
	c.ProjectionYears = aux.ProjectionYears
	c.CrossoverHorizonYears = aux.CrossoverHorizonYears
	c.EnduranceMaxYears = aux.EnduranceMaxYears
	c.MonteCarloTrials = aux.MonteCarloTrials

	c.Brackets = make(map[domain.FilingStatus][]Bracket, len(aux.Brackets))
	for status, rungs := range aux.Brackets {
		table := make([]Bracket, 0, len(rungs))
		for _, r := range rungs {
			b := Bracket{Rate: decimal.NewFromFloat(r.Rate)}
			if r.Ceiling != nil {
				ceiling := decimal.NewFromFloat(*r.Ceiling)
				b.Ceiling = &ceiling
			}
			table = append(table, b)
		}
		c.Brackets[domain.FilingStatus(status)] = table
	}

	return nil
}

// LoadFromFile loads and validates a tax-year configuration from a YAML file.
func LoadFromFile(filename string) (*TaxYearConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse parses and validates a tax-year configuration from YAML bytes.
func Parse(data []byte) (*TaxYearConfig, error) {
	var cfg TaxYearConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

var (
	defaultOnce sync.Once
	defaultCfg  *TaxYearConfig
)

// Default returns the embedded tax-year configuration. The embedded file is
// fixed at build time, so a parse failure is a programming error.
func Default() *TaxYearConfig {
	defaultOnce.Do(func() {
		cfg, err := Parse(defaultConfigYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded default config is invalid: %v", err))
		}
		defaultCfg = cfg
	})
	return defaultCfg
}

// Validate checks rates, horizons, and bracket-table shape.
func (c *TaxYearConfig) Validate() error {
	if c.TaxYear <= 0 {
		return fmt.Errorf("tax_year must be positive, got %d", c.TaxYear)
	}
	if c.InvestmentReturnRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("investment_return_rate must be greater than -100%%")
	}
	one := decimal.NewFromInt(1)
	fractions := map[string]decimal.Decimal{
		"withdrawal_rate":         c.WithdrawalRate,
		"default_savings_rate":    c.DefaultSavingsRate,
		"after_tax_spending_rate": c.AfterTaxSpendingRate,
		"wealth_spending_rate":    c.WealthSpendingRate,
	}
	for name, rate := range fractions {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("%s must be within [0,1], got %s", name, rate)
		}
	}
	if c.ReturnRateStddev.IsNegative() {
		return fmt.Errorf("return_rate_stddev must not be negative")
	}
	if c.ProjectionYears <= 0 {
		return fmt.Errorf("projection_years must be positive, got %d", c.ProjectionYears)
	}
	if c.CrossoverHorizonYears <= 0 {
		return fmt.Errorf("crossover_horizon_years must be positive, got %d", c.CrossoverHorizonYears)
	}
	if c.EnduranceMaxYears <= 0 {
		return fmt.Errorf("endurance_max_years must be positive, got %d", c.EnduranceMaxYears)
	}
	if c.MonteCarloTrials < 0 {
		return fmt.Errorf("monte_carlo_trials must not be negative, got %d", c.MonteCarloTrials)
	}

	for _, status := range domain.FilingStatuses() {
		table, ok := c.Brackets[status]
		if !ok {
			return fmt.Errorf("missing bracket table for filing status %q", status)
		}
		if err := validateBracketTable(status, table); err != nil {
			return err
		}
	}
	for status := range c.Brackets {
		if !status.Valid() {
			return fmt.Errorf("bracket table for unknown filing status %q", status)
		}
	}
	return nil
}

func validateBracketTable(status domain.FilingStatus, table []Bracket) error {
	if len(table) == 0 {
		return fmt.Errorf("bracket table for %q is empty", status)
	}
	one := decimal.NewFromInt(1)
	prev := decimal.Zero
	for i, b := range table {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d for %q has rate %s outside [0,1]", i, status, b.Rate)
		}
		last := i == len(table)-1
		if last {
			if b.Ceiling != nil {
				return fmt.Errorf("top bracket for %q must be unbounded", status)
			}
			continue
		}
		if b.Ceiling == nil {
			return fmt.Errorf("bracket %d for %q is unbounded but is not the top bracket", i, status)
		}
		if b.Ceiling.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket ceilings for %q must be strictly increasing at index %d", status, i)
		}
		prev = *b.Ceiling
	}
	return nil
}
