package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fin-tools/forecast-atlas/pkg/adapters"
	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	fileexport "github.com/fin-tools/forecast-atlas/pkg/services/export"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/spf13/cobra"
)

// Reporter renders a finished report to the terminal.
type Reporter interface {
	Handle(report *domain.Report) error
}

// ReporterFactory picks a reporter; plain selects the compact list form.
type ReporterFactory func(plain bool) Reporter

type AnalyzeCmd struct {
	input      string
	scenario   string
	regions    []string
	years      []string
	sorted     bool
	plain      bool
	exportPath string

	overrideUnits float64
	overridePrice float64
	overrideFX    float64

	currency   string
	controller forecast.Controller
	reporterFn ReporterFactory
}

// NewAnalyzeCmd creates the analyze command: run one forecast pass over an
// assumptions file and print the report.
func NewAnalyzeCmd(controller forecast.Controller, currency string, reporterFn ReporterFactory) *cobra.Command {
	ac := &AnalyzeCmd{
		controller: controller,
		currency:   currency,
		reporterFn: reporterFn,
	}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute a forecast from an assumptions file",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.input, "input", "", "Path to the assumptions file (csv or xlsx)")
	cmd.Flags().StringVar(&ac.scenario, "scenario", "", "Scenario to report on (e.g. Base)")
	cmd.Flags().StringSliceVar(&ac.regions, "region", nil, "Regions to include (repeatable)")
	cmd.Flags().StringSliceVar(&ac.years, "year", nil, "Years to include (repeatable)")
	cmd.Flags().BoolVar(&ac.sorted, "sort", false, "Sort grouped summaries by key")
	cmd.Flags().BoolVar(&ac.plain, "plain", false, "Compact list output instead of tables")
	cmd.Flags().StringVar(&ac.exportPath, "export", "", "Also write raw results to this file (csv or xlsx)")
	cmd.Flags().Float64Var(&ac.overrideUnits, "override-units", 0, "Override Units Sold on every row")
	cmd.Flags().Float64Var(&ac.overridePrice, "override-price", 0, "Override Price per Unit on every row")
	cmd.Flags().Float64Var(&ac.overrideFX, "override-fx", 0, "Override FX Rate on every row")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	file, err := os.Open(ac.input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	opts := forecast.RunOptions{
		Filter: domain.Filter{
			Scenario: ac.scenario,
			Regions:  ac.regions,
			Years:    ac.years,
		},
		Sorted: ac.sorted,
	}
	// Flags record presence explicitly so an override of zero is honored.
	if cmd.Flags().Changed("override-units") {
		opts.Overrides.UnitsSold = &ac.overrideUnits
	}
	if cmd.Flags().Changed("override-price") {
		opts.Overrides.PricePerUnit = &ac.overridePrice
	}
	if cmd.Flags().Changed("override-fx") {
		opts.Overrides.FXRate = &ac.overrideFX
	}

	run, err := ac.controller.Run(ctx, file, dataset.FormatFromPath(ac.input), opts)
	if err != nil {
		return fmt.Errorf("failed to compute forecast: %w", err)
	}

	if ac.exportPath != "" {
		if err := exportResults(ac.exportPath, run); err != nil {
			return err
		}
	}

	report := adapters.MapForecastRunToReport(run, ac.currency)
	return ac.reporterFn(ac.plain).Handle(report)
}

func exportResults(path string, run *domain.ForecastRun) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer out.Close()

	switch dataset.FormatFromPath(path) {
	case "csv":
		err = fileexport.WriteCSV(out, run.Lines)
	case "xlsx":
		err = fileexport.WriteXLSX(out, run.Lines)
	default:
		return fmt.Errorf("unsupported export format for %q, expected csv or xlsx", path)
	}
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
