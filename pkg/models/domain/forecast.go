package domain

// ForecastInput holds the drivers for one scenario/product/region/year
// combination. Records are immutable once bound; the calculator is a pure
// function of these fields.
type ForecastInput struct {
	Scenario string
	Product  string
	Region   string // "Unknown" when absent from the source
	Year     string // "N/A" when absent from the source

	UnitsSold         float64
	PricePerUnit      float64 // local currency
	FXRate            float64 // local -> group currency multiplier
	CogsPct           float64 // fraction of local revenue, [0,1]
	OperatingExpenses float64 // local currency
	Depreciation      float64
	TaxRate           float64 // fraction, [0,1]
}

// ForecastLine is the computed output for one ForecastInput.
// All *Pct fields are percentage points (scaled by 100).
type ForecastLine struct {
	Scenario string
	Product  string
	Region   string
	Year     string

	RevenueLocal       float64
	RevenueGroup       float64
	COGS               float64
	GrossMargin        float64
	GrossMarginPct     float64
	EBITDA             float64
	OperatingProfit    float64 // EBIT
	OperatingMarginPct float64
	Tax                float64
	NetIncome          float64
	NetMarginPct       float64
	CashFlow           float64

	// Carried through from the input for traceability.
	OperatingExpenses float64
	Depreciation      float64
}

// Overrides replace a driver column across all input rows before
// calculation. A nil field means "leave the column untouched"; a present
// zero is a real override.
type Overrides struct {
	UnitsSold    *float64
	PricePerUnit *float64
	FXRate       *float64
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.UnitsSold == nil && o.PricePerUnit == nil && o.FXRate == nil
}

// Filter restricts computed lines before aggregation and display.
// Zero values impose no restriction.
type Filter struct {
	Scenario string   // single choice
	Regions  []string // multi choice
	Years    []string // multi choice
}

// Matches reports whether a line passes the filter.
func (f Filter) Matches(line ForecastLine) bool {
	if f.Scenario != "" && line.Scenario != f.Scenario {
		return false
	}
	if len(f.Regions) > 0 && !contains(f.Regions, line.Region) {
		return false
	}
	if len(f.Years) > 0 && !contains(f.Years, line.Year) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// RegionSummary sums absolute metrics per region.
type RegionSummary struct {
	Region    string
	NetIncome float64
	CashFlow  float64
}

// ProductMarginSummary averages the three margin percentages per product.
type ProductMarginSummary struct {
	Product            string
	GrossMarginPct     float64
	OperatingMarginPct float64
	NetMarginPct       float64
}

// ProductRevenue is one bar of the revenue-by-product breakdown,
// split by region.
type ProductRevenue struct {
	Region       string
	Product      string
	RevenueGroup float64
}

// Waterfall carries the aggregate revenue-to-net-income walk over the
// filtered lines. OperatingProfit and NetIncome are recomputed from the
// totals (RevenueGroup - COGS - Opex, then minus Tax) and are not per-line
// sums.
type Waterfall struct {
	RevenueGroup      float64
	COGS              float64
	OperatingExpenses float64
	Depreciation      float64
	Tax               float64
	OperatingProfit   float64
	NetIncome         float64
}

// ForecastRun is the full result of one pass over an uploaded dataset:
// every computed line plus the derived summary views for the filtered subset.
type ForecastRun struct {
	ID       string
	Scenario string

	// All computed lines, unfiltered; this is what raw exports contain.
	Lines []ForecastLine

	// Filtered subset used for the summaries below.
	Filtered []ForecastLine

	RegionSummaries []RegionSummary
	MarginSummaries []ProductMarginSummary
	ProductRevenue  []ProductRevenue
	Waterfall       Waterfall
}
