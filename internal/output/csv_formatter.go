package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ficalc/independence-calculator/internal/domain"
)

// CSVFormatter exports every yearly series in long form: one row per
// (series, year, value), spreadsheet-friendly for charting.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(s *domain.Session) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"series", "year", "value"}); err != nil {
		return nil, err
	}

	writeSeries := func(name string, series domain.ProjectionSeries) error {
		for i, balance := range series {
			if err := w.Write([]string{name, strconv.Itoa(i + 1), balance.StringFixed(0)}); err != nil {
				return err
			}
		}
		return nil
	}
	writeCrossover := func(prefix string, cr domain.CrossoverResult) error {
		for _, rec := range cr.Records {
			year := strconv.Itoa(rec.Year)
			rows := [][3]string{
				{prefix + "_assets", year, rec.Assets.StringFixed(0)},
				{prefix + "_passive_income", year, rec.PassiveIncome.StringFixed(0)},
			}
			for _, row := range rows {
				if err := w.Write(row[:]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := writeSeries("worker_projection", s.WorkerProjection); err != nil {
		return nil, err
	}
	if err := writeSeries("investor_projection", s.InvestorProjection); err != nil {
		return nil, err
	}
	if err := writeSeries("adjusted_projection", s.AdjustedProjection); err != nil {
		return nil, err
	}
	if err := writeCrossover("worker", s.Crossovers.Worker); err != nil {
		return nil, err
	}
	if err := writeCrossover("investor", s.Crossovers.Investor); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"earned_income", "0", earnedIncome(s).StringFixed(0)}); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func earnedIncome(s *domain.Session) decimal.Decimal {
	if len(s.Crossovers.Worker.Records) > 0 {
		return s.Crossovers.Worker.Records[0].EarnedIncome
	}
	return s.Result.AfterTaxIncome.Round(0)
}
