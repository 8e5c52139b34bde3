package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/pkg/moneyutil"
)

// PDFFormatter renders a one-page summary report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(s *domain.Session) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Financial Independence Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Financial Independence Report - Tax Year %d", s.TaxYear), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	r := s.Result
	pdf.SetFont("Helvetica", "", 11)
	inputLines := []string{
		fmt.Sprintf("Gross income: %s (%s)", moneyutil.FormatDollars(s.Inputs.PreTaxIncome), s.Inputs.FilingStatus),
		fmt.Sprintf("Federal tax: %s   Total tax: %s", moneyutil.FormatDollars(r.FederalTax), moneyutil.FormatDollars(r.TotalTax)),
		fmt.Sprintf("After-tax income: %s   Current wealth: %s", moneyutil.FormatDollars(r.AfterTaxIncome), moneyutil.FormatDollars(r.WealthAccount)),
	}
	for _, line := range inputLines {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	colWidths := []float64{70, 55, 55}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"", "Worker", "Investor"} {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][3]string{
		{"Annual saving", moneyutil.FormatDollars(r.EstimatedSaving), moneyutil.FormatDollars(r.TargetSaving)},
		{"Annual spending", moneyutil.FormatDollars(r.EstimatedSpending), moneyutil.FormatDollars(r.TargetSpending)},
		{"Wealth in 15 years", moneyutil.FormatDollars(s.Endurance.WorkerWealth15Yr), moneyutil.FormatDollars(s.Endurance.InvestorWealth15Yr)},
		{"Endurance today", FormatEnduranceYears(s.Endurance.WorkerCurrentEndurance), FormatEnduranceYears(s.Endurance.InvestorCurrentEndurance)},
		{"Endurance in 15 years", FormatEnduranceYears(s.Endurance.WorkerFutureEndurance), FormatEnduranceYears(s.Endurance.InvestorFutureEndurance)},
		{"Crossover", FormatCrossoverYear(s.Crossovers.Worker.CrossoverYear), FormatCrossoverYear(s.Crossovers.Investor.CrossoverYear)},
	}
	for _, row := range rows {
		pdf.CellFormat(colWidths[0], 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, row[1], "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, row[2], "1", 1, "R", false, 0, "")
	}

	if s.Bands != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, fmt.Sprintf("Investor %d-year balance bands (%d trials): P10 %s / P50 %s / P90 %s",
			s.Bands.Years, s.Bands.Trials,
			moneyutil.FormatDollars(s.Bands.P10),
			moneyutil.FormatDollars(s.Bands.P50),
			moneyutil.FormatDollars(s.Bands.P90)), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
