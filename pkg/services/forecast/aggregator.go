package forecast

import (
	"sort"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
)

// SummarizeRegions sums NetIncome and CashFlow per region. Groups appear in
// first-seen order unless sorted is set.
func SummarizeRegions(lines []domain.ForecastLine, sorted bool) []domain.RegionSummary {
	index := make(map[string]int)
	var summaries []domain.RegionSummary

	for _, line := range lines {
		i, ok := index[line.Region]
		if !ok {
			i = len(summaries)
			index[line.Region] = i
			summaries = append(summaries, domain.RegionSummary{Region: line.Region})
		}
		summaries[i].NetIncome += line.NetIncome
		summaries[i].CashFlow += line.CashFlow
	}

	if sorted {
		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].Region < summaries[j].Region
		})
	}
	return summaries
}

// SummarizeMargins averages the three margin percentages per product.
// Groups appear in first-seen order unless sorted is set.
func SummarizeMargins(lines []domain.ForecastLine, sorted bool) []domain.ProductMarginSummary {
	index := make(map[string]int)
	counts := make(map[string]int)
	var summaries []domain.ProductMarginSummary

	for _, line := range lines {
		i, ok := index[line.Product]
		if !ok {
			i = len(summaries)
			index[line.Product] = i
			summaries = append(summaries, domain.ProductMarginSummary{Product: line.Product})
		}
		summaries[i].GrossMarginPct += line.GrossMarginPct
		summaries[i].OperatingMarginPct += line.OperatingMarginPct
		summaries[i].NetMarginPct += line.NetMarginPct
		counts[line.Product]++
	}

	for i := range summaries {
		n := float64(counts[summaries[i].Product])
		summaries[i].GrossMarginPct /= n
		summaries[i].OperatingMarginPct /= n
		summaries[i].NetMarginPct /= n
	}

	if sorted {
		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].Product < summaries[j].Product
		})
	}
	return summaries
}

// BreakdownRevenue sums group revenue per region/product pair, in first-seen
// order. This feeds the stacked revenue-by-product view.
func BreakdownRevenue(lines []domain.ForecastLine) []domain.ProductRevenue {
	type key struct{ region, product string }
	index := make(map[key]int)
	var breakdown []domain.ProductRevenue

	for _, line := range lines {
		k := key{line.Region, line.Product}
		i, ok := index[k]
		if !ok {
			i = len(breakdown)
			index[k] = i
			breakdown = append(breakdown, domain.ProductRevenue{
				Region:  line.Region,
				Product: line.Product,
			})
		}
		breakdown[i].RevenueGroup += line.RevenueGroup
	}
	return breakdown
}

// BuildWaterfall totals the revenue-to-net-income walk over the given lines.
// The walk recomputes OperatingProfit from the group-currency totals
// (RevenueGroup - COGS - Opex) rather than summing per-line EBIT.
func BuildWaterfall(lines []domain.ForecastLine) domain.Waterfall {
	var w domain.Waterfall
	for _, line := range lines {
		w.RevenueGroup += line.RevenueGroup
		w.COGS += line.COGS
		w.OperatingExpenses += line.OperatingExpenses
		w.Depreciation += line.Depreciation
		w.Tax += line.Tax
	}
	w.OperatingProfit = w.RevenueGroup - w.COGS - w.OperatingExpenses
	w.NetIncome = w.OperatingProfit - w.Tax
	return w
}
