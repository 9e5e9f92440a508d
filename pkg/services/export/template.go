package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	"github.com/xuri/excelize/v2"
)

// TemplateColumns is the header of the sample input template, required
// columns first.
var TemplateColumns = []string{
	dataset.ColScenario,
	dataset.ColProduct,
	dataset.ColRegion,
	dataset.ColYear,
	dataset.ColUnitsSold,
	dataset.ColPricePerUnit,
	dataset.ColFXRate,
	dataset.ColCogsPct,
	dataset.ColOperatingExpenses,
	dataset.ColDepreciation,
	dataset.ColTaxRate,
}

var templateRows = [][]interface{}{
	{"Base", "Product A", "Asia", 2024, 1000, 25.0, 1.0, 0.60, 20000, 2500, 0.25},
	{"Base", "Product B", "Europe", 2024, 1200, 27.0, 1.1, 0.65, 22000, 2600, 0.25},
	{"Best", "Product C", "North America", 2024, 800, 20.0, 0.9, 0.62, 18000, 2400, 0.25},
	{"Worst", "Product D", "South America", 2024, 700, 22.0, 1.2, 0.66, 17000, 2200, 0.25},
}

// WriteTemplateXLSX writes the sample assumptions workbook users can fill in.
func WriteTemplateXLSX(w io.Writer) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if err := workbook.SetSheetRow(sheet, "A1", &TemplateColumns); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	for i := range templateRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := workbook.SetSheetRow(sheet, cell, &templateRows[i]); err != nil {
			return fmt.Errorf("failed to write template row %d: %w", i+2, err)
		}
	}
	return workbook.Write(w)
}

// WriteTemplateCSV writes the sample assumptions dataset as CSV.
func WriteTemplateCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(TemplateColumns); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	for _, row := range templateRows {
		record := make([]string, 0, len(row))
		for _, v := range row {
			record = append(record, cellText(v))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write template row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
