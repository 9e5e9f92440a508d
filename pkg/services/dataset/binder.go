package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
)

// Source column names. Whitespace around headers is trimmed before lookup.
const (
	ColScenario          = "Scenario"
	ColProduct           = "Product"
	ColRegion            = "Region"
	ColYear              = "Year"
	ColUnitsSold         = "Units Sold"
	ColPricePerUnit      = "Price per Unit"
	ColFXRate            = "FX Rate"
	ColCogsPct           = "COGS %"
	ColOperatingExpenses = "Operating Expenses"
	ColDepreciation      = "Depreciation"
	ColTaxRate           = "Tax Rate"
)

// Defaults filled in when the optional columns are absent.
const (
	DefaultRegion       = "Unknown"
	DefaultYear         = "N/A"
	DefaultDepreciation = 0.0
	DefaultTaxRate      = 0.25
)

// RequiredColumns lists the columns an upload must carry.
var RequiredColumns = []string{
	ColScenario,
	ColProduct,
	ColUnitsSold,
	ColPricePerUnit,
	ColFXRate,
	ColCogsPct,
	ColOperatingExpenses,
}

// Bind converts a parsed table into typed forecast inputs, filling defaults
// for the optional Region/Year/Depreciation/Tax Rate columns. Any row that
// cannot be fully bound aborts the whole pass.
func Bind(t *Table) ([]domain.ForecastInput, error) {
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	if len(t.Rows) == 0 {
		return nil, ErrEmptyDataset
	}

	inputs := make([]domain.ForecastInput, 0, len(t.Rows))
	for i, row := range t.Rows {
		input, err := bindRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func bindRow(row Row) (domain.ForecastInput, error) {
	input := domain.ForecastInput{
		Scenario: strings.TrimSpace(row[ColScenario]),
		Product:  strings.TrimSpace(row[ColProduct]),
		Region:   textOrDefault(row, ColRegion, DefaultRegion),
		Year:     textOrDefault(row, ColYear, DefaultYear),
	}

	fields := []struct {
		column string
		target *float64
	}{
		{ColUnitsSold, &input.UnitsSold},
		{ColPricePerUnit, &input.PricePerUnit},
		{ColFXRate, &input.FXRate},
		{ColCogsPct, &input.CogsPct},
		{ColOperatingExpenses, &input.OperatingExpenses},
	}
	for _, f := range fields {
		v, err := parseCell(row[f.column], f.column)
		if err != nil {
			return domain.ForecastInput{}, err
		}
		*f.target = v
	}

	var err error
	input.Depreciation, err = parseOptionalCell(row, ColDepreciation, DefaultDepreciation)
	if err != nil {
		return domain.ForecastInput{}, err
	}
	input.TaxRate, err = parseOptionalCell(row, ColTaxRate, DefaultTaxRate)
	if err != nil {
		return domain.ForecastInput{}, err
	}
	return input, nil
}

func textOrDefault(row Row, column, fallback string) string {
	v := strings.TrimSpace(row[column])
	if v == "" {
		return fallback
	}
	return v
}

func parseCell(raw, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q, cell %q", ErrMalformedValue, column, raw)
	}
	return v, nil
}

// parseOptionalCell falls back to the default when the column is absent or
// the cell is empty, matching the source model's fill-then-compute behavior.
func parseOptionalCell(row Row, column string, fallback float64) (float64, error) {
	raw, ok := row[column]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return parseCell(raw, column)
}
