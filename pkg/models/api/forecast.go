package api

// ForecastLine mirrors one computed row of the forecast table.
// Percentage fields are percentage points; monetary fields are raw values.
type ForecastLine struct {
	Scenario string `json:"scenario"`
	Product  string `json:"product"`
	Region   string `json:"region"`
	Year     string `json:"year"`

	RevenueLocal       float64 `json:"revenue_local"`
	RevenueGroup       float64 `json:"revenue_group"`
	COGS               float64 `json:"cogs"`
	GrossMargin        float64 `json:"gross_margin"`
	GrossMarginPct     float64 `json:"gross_margin_pct"`
	EBITDA             float64 `json:"ebitda"`
	OperatingProfit    float64 `json:"operating_profit"`
	OperatingMarginPct float64 `json:"operating_margin_pct"`
	Tax                float64 `json:"tax"`
	NetIncome          float64 `json:"net_income"`
	NetMarginPct       float64 `json:"net_margin_pct"`
	CashFlow           float64 `json:"cash_flow"`

	OperatingExpenses float64 `json:"operating_expenses"`
	Depreciation      float64 `json:"depreciation"`
}

type RegionSummary struct {
	Region    string  `json:"region"`
	NetIncome float64 `json:"net_income"`
	CashFlow  float64 `json:"cash_flow"`
}

type ProductMarginSummary struct {
	Product            string  `json:"product"`
	GrossMarginPct     float64 `json:"gross_margin_pct"`
	OperatingMarginPct float64 `json:"operating_margin_pct"`
	NetMarginPct       float64 `json:"net_margin_pct"`
}

type ProductRevenue struct {
	Region       string  `json:"region"`
	Product      string  `json:"product"`
	RevenueGroup float64 `json:"revenue_group"`
}

type Waterfall struct {
	RevenueGroup      float64 `json:"revenue_group"`
	COGS              float64 `json:"cogs"`
	OperatingExpenses float64 `json:"operating_expenses"`
	Depreciation      float64 `json:"depreciation"`
	Tax               float64 `json:"tax"`
	OperatingProfit   float64 `json:"operating_profit"`
	NetIncome         float64 `json:"net_income"`
}

// ForecastRun is the response of one forecast pass. Lines carry the filtered
// subset shown on screen; the export endpoint serves every computed line.
type ForecastRun struct {
	ID              string                 `json:"id"`
	Scenario        string                 `json:"scenario,omitempty"`
	Lines           []ForecastLine         `json:"lines"`
	RegionSummaries []RegionSummary        `json:"region_summaries"`
	MarginSummaries []ProductMarginSummary `json:"margin_summaries"`
	ProductRevenue  []ProductRevenue       `json:"product_revenue"`
	Waterfall       Waterfall              `json:"waterfall"`
}
