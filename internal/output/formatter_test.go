package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficalc/independence-calculator/internal/calculation"
	"github.com/ficalc/independence-calculator/internal/domain"
)

func sessionFixture(t *testing.T) *domain.Session {
	t.Helper()
	engine := calculation.NewCalculationEngine()
	engine.Simulator.Seed = 42
	session, err := engine.RunSession(domain.UserInputs{
		PreTaxIncome:   decimal.NewFromInt(100000),
		StateIncomeTax: decimal.NewFromInt(3000),
		FilingStatus:   domain.FilingSingle,
	})
	require.NoError(t, err)
	return session
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q must be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
	assert.Len(t, FormatterNames(), 4)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sessionFixture(t))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "FINANCIAL INDEPENDENCE SUMMARY (tax year 2025)")
	assert.Contains(t, text, "$16,914")  // federal tax
	assert.Contains(t, text, "$80,086")  // after-tax income
	assert.Contains(t, text, "$40,043")  // investor saving
	assert.Contains(t, text, "year 20")  // investor crossover
	assert.Contains(t, text, "year 37")  // worker crossover
	assert.Contains(t, text, "Worker")
	assert.Contains(t, text, "Investor")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sessionFixture(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"series", "year", "value"}, rows[0])

	counts := map[string]int{}
	for _, row := range rows[1:] {
		require.Len(t, row, 3)
		counts[row[0]]++
	}
	assert.Equal(t, 15, counts["worker_projection"])
	assert.Equal(t, 15, counts["investor_projection"])
	assert.Equal(t, 15, counts["adjusted_projection"])
	assert.Equal(t, 51, counts["worker_assets"])
	assert.Equal(t, 51, counts["investor_passive_income"])
	assert.Equal(t, 1, counts["earned_income"])
}

func TestJSONFormatter(t *testing.T) {
	session := sessionFixture(t)
	data, err := JSONFormatter{}.Format(session)
	require.NoError(t, err)

	var decoded domain.Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, session.ID, decoded.ID)
	assert.True(t, decoded.Result.FederalTax.Equal(decimal.NewFromInt(16914)))
	assert.Len(t, decoded.WorkerProjection, 15)
	assert.Equal(t, 20, decoded.Crossovers.Investor.CrossoverYear)
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(sessionFixture(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output must be a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "indefinite", FormatEnduranceYears(domain.EnduranceIndefinite))
	assert.Equal(t, "6 yrs", FormatEnduranceYears(6))

	assert.Equal(t, "never", FormatCrossoverYear(domain.CrossoverNever))
	assert.Equal(t, "already independent", FormatCrossoverYear(0))
	assert.Equal(t, "year 20", FormatCrossoverYear(20))

	rate := EffectiveRate(decimal.NewFromInt(16914), decimal.NewFromInt(100000))
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.16914)))
	assert.True(t, EffectiveRate(decimal.NewFromInt(100), decimal.Zero).IsZero())
}

func TestWriteFormatted(t *testing.T) {
	session := sessionFixture(t)
	path := t.TempDir() + "/report.json"

	written, err := WriteFormatted(JSONFormatter{}, session, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	assert.Equal(t, "txt", Extension(ConsoleFormatter{}))
	assert.Equal(t, "csv", Extension(CSVFormatter{}))
}
