package domain

// Report represents a rendered forecast summary for terminal output
type Report struct {
	Title        string
	Scenario     string
	Currency     string
	LineCount    int
	TotalRevenue float64 // group currency, over the filtered lines
	TotalNet     float64 // net income, over the filtered lines
	Sections     []ReportSection
}

// ReportSection is one table within the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Columns []string
	Rows    [][]string
}
