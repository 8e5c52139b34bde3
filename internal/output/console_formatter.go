package output

import (
	"bytes"
	"fmt"

	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// ConsoleFormatter renders a concise worker-vs-investor comparison for the
// terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(s *domain.Session) ([]byte, error) {
	var buf bytes.Buffer
	r := s.Result

	fmt.Fprintf(&buf, "FINANCIAL INDEPENDENCE SUMMARY (tax year %d)\n", s.TaxYear)
	fmt.Fprintln(&buf, "=============================================")
	fmt.Fprintf(&buf, "Gross income:     %s (%s)\n", moneyutil.FormatDollars(s.Inputs.PreTaxIncome), s.Inputs.FilingStatus)
	fmt.Fprintf(&buf, "Federal tax:      %s (effective %s)\n",
		moneyutil.FormatDollars(r.FederalTax), moneyutil.FormatRate(EffectiveRate(r.FederalTax, s.Inputs.PreTaxIncome)))
	fmt.Fprintf(&buf, "Total tax:        %s\n", moneyutil.FormatDollars(r.TotalTax))
	fmt.Fprintf(&buf, "After-tax income: %s\n", moneyutil.FormatDollars(r.AfterTaxIncome))
	fmt.Fprintf(&buf, "Current wealth:   %s\n", moneyutil.FormatDollars(r.WealthAccount))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "", "Worker", "Investor")
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Annual saving",
		moneyutil.FormatDollars(r.EstimatedSaving), moneyutil.FormatDollars(r.TargetSaving))
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Annual spending",
		moneyutil.FormatDollars(r.EstimatedSpending), moneyutil.FormatDollars(r.TargetSpending))
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Wealth in 15 yrs",
		moneyutil.FormatDollars(s.Endurance.WorkerWealth15Yr), moneyutil.FormatDollars(s.Endurance.InvestorWealth15Yr))
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Endurance (today)",
		FormatEnduranceYears(s.Endurance.WorkerCurrentEndurance), FormatEnduranceYears(s.Endurance.InvestorCurrentEndurance))
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Endurance (in 15 yrs)",
		FormatEnduranceYears(s.Endurance.WorkerFutureEndurance), FormatEnduranceYears(s.Endurance.InvestorFutureEndurance))
	fmt.Fprintf(&buf, "%-22s %15s %15s\n", "Crossover",
		FormatCrossoverYear(s.Crossovers.Worker.CrossoverYear), FormatCrossoverYear(s.Crossovers.Investor.CrossoverYear))

	if s.Bands != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Investor %d-yr balance bands (%d trials):\n", s.Bands.Years, s.Bands.Trials)
		fmt.Fprintf(&buf, "  P10=%s P25=%s P50=%s P75=%s P90=%s\n",
			moneyutil.FormatDollars(s.Bands.P10), moneyutil.FormatDollars(s.Bands.P25),
			moneyutil.FormatDollars(s.Bands.P50), moneyutil.FormatDollars(s.Bands.P75),
			moneyutil.FormatDollars(s.Bands.P90))
	}

	return buf.Bytes(), nil
}
