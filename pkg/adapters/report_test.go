package adapters

import (
	"testing"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapForecastRunToReport(t *testing.T) {
	run := &domain.ForecastRun{
		ID:       "run-1",
		Scenario: "Base",
		Filtered: []domain.ForecastLine{
			{
				Scenario: "Base", Product: "Product A", Region: "Asia", Year: "2024",
				RevenueLocal: 25000, RevenueGroup: 25000, COGS: 15000,
				GrossMargin: 10000, GrossMarginPct: 40, EBITDA: -7500,
				OperatingProfit: -10000, OperatingMarginPct: -40,
				Tax: -2500, NetIncome: -7500, NetMarginPct: -30, CashFlow: -5000,
			},
		},
		RegionSummaries: []domain.RegionSummary{
			{Region: "Asia", NetIncome: -7500, CashFlow: -5000},
		},
		MarginSummaries: []domain.ProductMarginSummary{
			{Product: "Product A", GrossMarginPct: 40, OperatingMarginPct: -40, NetMarginPct: -30},
		},
		Waterfall: domain.Waterfall{
			RevenueGroup: 25000, COGS: 15000, OperatingExpenses: 20000,
			Depreciation: 2500, Tax: -2500, OperatingProfit: -10000, NetIncome: -7500,
		},
	}

	report := MapForecastRunToReport(run, "USD")

	assert.Equal(t, "Base", report.Scenario)
	assert.Equal(t, "USD", report.Currency)
	assert.Equal(t, 1, report.LineCount)
	require.Len(t, report.Sections, 4)

	details := report.Sections[0]
	assert.Equal(t, "Forecast Details by Product", details.Title)
	require.Len(t, details.Rows, 1)
	assert.Len(t, details.Rows[0], len(details.Columns))
	assert.Equal(t, "25,000.00", details.Rows[0][4])
	assert.Equal(t, "40.0%", details.Rows[0][8])

	regions := report.Sections[1]
	require.Len(t, regions.Rows, 1)
	assert.Equal(t, []string{"Asia", "-7,500.00", "-5,000.00"}, regions.Rows[0])

	walk := report.Sections[3]
	require.Len(t, walk.Rows, 6)
	assert.Equal(t, []string{"Revenue", "25,000.00"}, walk.Rows[0])
	// Deduction steps are negated for display.
	assert.Equal(t, []string{"-COGS", "-15,000.00"}, walk.Rows[1])
	assert.Equal(t, []string{"-Tax", "2,500.00"}, walk.Rows[4])
	assert.Equal(t, "-10,000.00", walk.Summary["Operating Profit"])
}

func TestMapForecastRunDomainToApi(t *testing.T) {
	run := &domain.ForecastRun{
		ID:       "run-1",
		Scenario: "Base",
		Lines: []domain.ForecastLine{
			{Product: "Product A"}, {Product: "Product B"},
		},
		Filtered: []domain.ForecastLine{{Product: "Product A", RevenueLocal: 25000}},
	}

	apiRun := MapForecastRunDomainToApi(run)

	assert.Equal(t, "run-1", apiRun.ID)
	// The response carries only the filtered subset.
	require.Len(t, apiRun.Lines, 1)
	assert.Equal(t, "Product A", apiRun.Lines[0].Product)
	assert.InDelta(t, 25000.0, apiRun.Lines[0].RevenueLocal, 1e-9)

	// Empty groupings encode as [] rather than null.
	assert.NotNil(t, apiRun.RegionSummaries)
	assert.NotNil(t, apiRun.MarginSummaries)
	assert.NotNil(t, apiRun.ProductRevenue)
}
