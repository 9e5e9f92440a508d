package adapters

import (
	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/fin-tools/forecast-atlas/pkg/services/export"
)

// MapForecastRunToReport renders a run into the terminal report model.
// Cells are display-formatted here; raw values stay on the run itself.
func MapForecastRunToReport(run *domain.ForecastRun, currency string) *domain.Report {
	report := &domain.Report{
		Title:        "Driver-Based Financial Forecast",
		Scenario:     run.Scenario,
		Currency:     currency,
		LineCount:    len(run.Filtered),
		TotalRevenue: run.Waterfall.RevenueGroup,
		TotalNet:     run.Waterfall.NetIncome,
	}

	details := domain.ReportSection{
		Title: "Forecast Details by Product",
		Columns: []string{
			"Scenario", "Product", "Region", "Year",
			"Revenue (Local)", "Revenue (Group)", "COGS", "Gross Margin",
			"Gross Margin %", "EBITDA", "Operating Profit (EBIT)",
			"Operating Margin %", "Tax", "Net Income", "Net Margin %",
			"Cash Flow",
		},
	}
	for _, line := range run.Filtered {
		details.Rows = append(details.Rows, []string{
			line.Scenario,
			line.Product,
			line.Region,
			line.Year,
			export.FormatCurrency(line.RevenueLocal),
			export.FormatCurrency(line.RevenueGroup),
			export.FormatCurrency(line.COGS),
			export.FormatCurrency(line.GrossMargin),
			export.FormatPercent(line.GrossMarginPct),
			export.FormatCurrency(line.EBITDA),
			export.FormatCurrency(line.OperatingProfit),
			export.FormatPercent(line.OperatingMarginPct),
			export.FormatCurrency(line.Tax),
			export.FormatCurrency(line.NetIncome),
			export.FormatPercent(line.NetMarginPct),
			export.FormatCurrency(line.CashFlow),
		})
	}

	regions := domain.ReportSection{
		Title:   "Net Income and Cash Flow by Region",
		Columns: []string{"Region", "Net Income", "Cash Flow"},
	}
	for _, s := range run.RegionSummaries {
		regions.Rows = append(regions.Rows, []string{
			s.Region,
			export.FormatCurrency(s.NetIncome),
			export.FormatCurrency(s.CashFlow),
		})
	}

	margins := domain.ReportSection{
		Title:   "Margin Summary",
		Columns: []string{"Product", "Gross Margin %", "Operating Margin %", "Net Margin %"},
	}
	for _, s := range run.MarginSummaries {
		margins.Rows = append(margins.Rows, []string{
			s.Product,
			export.FormatPercent(s.GrossMarginPct),
			export.FormatPercent(s.OperatingMarginPct),
			export.FormatPercent(s.NetMarginPct),
		})
	}

	walk := domain.ReportSection{
		Title:   "Revenue to Net Income Walk",
		Columns: []string{"Step", "Amount"},
		Summary: map[string]interface{}{
			"Operating Profit": export.FormatCurrency(run.Waterfall.OperatingProfit),
		},
		Rows: [][]string{
			{"Revenue", export.FormatCurrency(run.Waterfall.RevenueGroup)},
			{"-COGS", export.FormatCurrency(-run.Waterfall.COGS)},
			{"-Opex", export.FormatCurrency(-run.Waterfall.OperatingExpenses)},
			{"-Depreciation", export.FormatCurrency(-run.Waterfall.Depreciation)},
			{"-Tax", export.FormatCurrency(-run.Waterfall.Tax)},
			{"Net Income", export.FormatCurrency(run.Waterfall.NetIncome)},
		},
	}

	report.Sections = []domain.ReportSection{details, regions, margins, walk}
	return report
}
