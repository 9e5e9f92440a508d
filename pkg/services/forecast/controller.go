package forecast

import (
	"context"
	"fmt"
	"io"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunOptions configure one forecast pass.
type RunOptions struct {
	Overrides domain.Overrides
	Filter    domain.Filter
	Sorted    bool // sort grouped summaries by key
}

// Controller runs the full upload-to-summary pass. It holds no mutable
// state; concurrent runs are independent.
type Controller interface {
	// Run parses the dataset, applies overrides, computes every line and
	// derives the summary views for the filtered subset
	Run(ctx context.Context, r io.Reader, format string, opts RunOptions) (*domain.ForecastRun, error)
	// SupportedFormats returns the dataset formats the controller accepts
	SupportedFormats() []string
}

type controller struct {
	parsers dataset.Registry
}

// NewController creates a forecast controller backed by the given parser
// registry.
func NewController(parsers dataset.Registry) Controller {
	return &controller{parsers: parsers}
}

func (c *controller) Run(
	ctx context.Context,
	r io.Reader,
	format string,
	opts RunOptions,
) (*domain.ForecastRun, error) {
	logger := zerolog.Ctx(ctx)

	parser, err := c.parsers.Create(format)
	if err != nil {
		return nil, err
	}

	table, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	inputs, err := dataset.Bind(table)
	if err != nil {
		return nil, fmt.Errorf("failed to bind dataset: %w", err)
	}

	inputs = ApplyOverrides(inputs, opts.Overrides)
	lines := CalculateAll(inputs)

	filtered := make([]domain.ForecastLine, 0, len(lines))
	for _, line := range lines {
		if opts.Filter.Matches(line) {
			filtered = append(filtered, line)
		}
	}

	run := &domain.ForecastRun{
		ID:              uuid.NewString(),
		Scenario:        opts.Filter.Scenario,
		Lines:           lines,
		Filtered:        filtered,
		RegionSummaries: SummarizeRegions(filtered, opts.Sorted),
		MarginSummaries: SummarizeMargins(filtered, opts.Sorted),
		ProductRevenue:  BreakdownRevenue(filtered),
		Waterfall:       BuildWaterfall(filtered),
	}

	logger.Info().
		Str("run_id", run.ID).
		Str("scenario", opts.Filter.Scenario).
		Int("rows", len(lines)).
		Int("filtered", len(filtered)).
		Msg("forecast pass completed")

	return run, nil
}

func (c *controller) SupportedFormats() []string {
	return c.parsers.Formats()
}
