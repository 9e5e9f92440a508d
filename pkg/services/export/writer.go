package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// ResultColumns is the column order of exported forecast results, matching
// the on-screen table.
var ResultColumns = []string{
	"Scenario",
	"Product",
	"Region",
	"Year",
	"Revenue (Local)",
	"Revenue (Group)",
	"COGS",
	"Gross Margin",
	"Gross Margin %",
	"EBITDA",
	"Operating Profit (EBIT)",
	"Operating Margin %",
	"Tax",
	"Net Income",
	"Net Margin %",
	"Cash Flow",
	"Operating Expenses",
	"Depreciation",
}

// Exports carry raw, unformatted values; display formatting is applied only
// in rendering contexts.
func lineValues(line domain.ForecastLine) []interface{} {
	return []interface{}{
		line.Scenario,
		line.Product,
		line.Region,
		line.Year,
		line.RevenueLocal,
		line.RevenueGroup,
		line.COGS,
		line.GrossMargin,
		line.GrossMarginPct,
		line.EBITDA,
		line.OperatingProfit,
		line.OperatingMarginPct,
		line.Tax,
		line.NetIncome,
		line.NetMarginPct,
		line.CashFlow,
		line.OperatingExpenses,
		line.Depreciation,
	}
}

// WriteCSV writes the forecast lines as a CSV document.
func WriteCSV(w io.Writer, lines []domain.ForecastLine) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ResultColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, line := range lines {
		record := make([]string, 0, len(ResultColumns))
		for _, v := range lineValues(line) {
			record = append(record, cellText(v))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes the forecast lines as a single-sheet workbook.
func WriteXLSX(w io.Writer, lines []domain.ForecastLine) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if err := workbook.SetSheetRow(sheet, "A1", &ResultColumns); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for i, line := range lines {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := lineValues(line)
		if err := workbook.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write xlsx row %d: %w", i+2, err)
		}
	}
	return workbook.Write(w)
}

func cellText(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
