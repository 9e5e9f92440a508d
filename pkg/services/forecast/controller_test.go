package forecast

import (
	"context"
	"strings"
	"testing"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	csvparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() Controller {
	return NewController(dataset.NewRegistry(map[string]dataset.ParserFactory{
		"csv": csvparser.ParserFactory,
	}))
}

const sampleCSV = `Scenario,Product,Region,Year,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses,Depreciation,Tax Rate
Base,Product A,Asia,2024,1000,25,1.0,0.60,20000,2500,0.25
Base,Product B,Europe,2024,1200,27,1.1,0.65,22000,2600,0.25
Best,Product C,Asia,2025,800,20,0.9,0.62,18000,2400,0.25
`

func TestControllerRun(t *testing.T) {
	ctrl := newTestController()

	run, err := ctrl.Run(context.Background(), strings.NewReader(sampleCSV), "csv", RunOptions{})
	require.NoError(t, err)

	require.Len(t, run.Lines, 3)
	assert.NotEmpty(t, run.ID)
	assert.Len(t, run.Filtered, 3)
	assert.InDelta(t, 25000, run.Lines[0].RevenueLocal, delta)
	assert.InDelta(t, 1200*27*1.1, run.Lines[1].RevenueGroup, delta)
}

func TestControllerRun_FilterAndSummaries(t *testing.T) {
	ctrl := newTestController()

	run, err := ctrl.Run(context.Background(), strings.NewReader(sampleCSV), "csv", RunOptions{
		Filter: domain.Filter{Scenario: "Base", Regions: []string{"Asia", "Europe"}},
	})
	require.NoError(t, err)

	assert.Len(t, run.Lines, 3)
	require.Len(t, run.Filtered, 2)
	for _, line := range run.Filtered {
		assert.Equal(t, "Base", line.Scenario)
	}

	require.Len(t, run.RegionSummaries, 2)
	assert.Equal(t, "Asia", run.RegionSummaries[0].Region)
	assert.Equal(t, "Europe", run.RegionSummaries[1].Region)

	var wantRevenue float64
	for _, line := range run.Filtered {
		wantRevenue += line.RevenueGroup
	}
	assert.InDelta(t, wantRevenue, run.Waterfall.RevenueGroup, delta)
}

func TestControllerRun_Overrides(t *testing.T) {
	ctrl := newTestController()
	units := 500.0

	run, err := ctrl.Run(context.Background(), strings.NewReader(sampleCSV), "csv", RunOptions{
		Overrides: domain.Overrides{UnitsSold: &units},
	})
	require.NoError(t, err)

	assert.InDelta(t, 500*25.0, run.Lines[0].RevenueLocal, delta)
	assert.InDelta(t, 500*27.0, run.Lines[1].RevenueLocal, delta)
	assert.InDelta(t, 500*20.0, run.Lines[2].RevenueLocal, delta)
}

func TestControllerRun_OptionalColumnsDefaulted(t *testing.T) {
	ctrl := newTestController()
	csv := `Scenario,Product,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses
Base,Product A,1000,25,1.0,0.60,20000
`

	run, err := ctrl.Run(context.Background(), strings.NewReader(csv), "csv", RunOptions{})
	require.NoError(t, err)
	require.Len(t, run.Lines, 1)

	line := run.Lines[0]
	assert.Equal(t, "Unknown", line.Region)
	assert.Equal(t, "N/A", line.Year)
	assert.Zero(t, line.Depreciation)
	// Default tax rate 0.25: EBIT = 10000 - 20000 = -10000, tax = -2500.
	assert.InDelta(t, -2500, line.Tax, delta)
}

func TestControllerRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		format  string
		wantErr error
	}{
		{
			name: "missing required column",
			csv: `Scenario,Product,Units Sold,Price per Unit,FX Rate,COGS %
Base,A,1,1,1,0.5
`,
			format:  "csv",
			wantErr: dataset.ErrMissingColumn,
		},
		{
			name:    "empty dataset",
			csv:     "Scenario,Product,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses\n",
			format:  "csv",
			wantErr: dataset.ErrEmptyDataset,
		},
		{
			name: "malformed value",
			csv: `Scenario,Product,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses
Base,A,many,1,1,0.5,10
`,
			format:  "csv",
			wantErr: dataset.ErrMalformedValue,
		},
	}

	ctrl := newTestController()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := ctrl.Run(context.Background(), strings.NewReader(tt.csv), tt.format, RunOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, run)
		})
	}
}

func TestControllerRun_UnsupportedFormat(t *testing.T) {
	ctrl := newTestController()

	_, err := ctrl.Run(context.Background(), strings.NewReader(sampleCSV), "ods", RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dataset format")
}

func TestControllerSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"csv"}, newTestController().SupportedFormats())
}
