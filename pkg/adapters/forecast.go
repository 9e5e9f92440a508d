package adapters

import (
	"github.com/fin-tools/forecast-atlas/pkg/models/api"
	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
)

func MapForecastRunDomainToApi(run *domain.ForecastRun) api.ForecastRun {
	apiRun := api.ForecastRun{
		ID:              run.ID,
		Scenario:        run.Scenario,
		Lines:           []api.ForecastLine{},
		RegionSummaries: []api.RegionSummary{},
		MarginSummaries: []api.ProductMarginSummary{},
		ProductRevenue:  []api.ProductRevenue{},
		Waterfall:       MapWaterfallDomainToApi(run.Waterfall),
	}

	for _, line := range run.Filtered {
		apiRun.Lines = append(apiRun.Lines, MapForecastLineDomainToApi(line))
	}
	for _, s := range run.RegionSummaries {
		apiRun.RegionSummaries = append(apiRun.RegionSummaries, api.RegionSummary{
			Region:    s.Region,
			NetIncome: s.NetIncome,
			CashFlow:  s.CashFlow,
		})
	}
	for _, s := range run.MarginSummaries {
		apiRun.MarginSummaries = append(apiRun.MarginSummaries, api.ProductMarginSummary{
			Product:            s.Product,
			GrossMarginPct:     s.GrossMarginPct,
			OperatingMarginPct: s.OperatingMarginPct,
			NetMarginPct:       s.NetMarginPct,
		})
	}
	for _, r := range run.ProductRevenue {
		apiRun.ProductRevenue = append(apiRun.ProductRevenue, api.ProductRevenue{
			Region:       r.Region,
			Product:      r.Product,
			RevenueGroup: r.RevenueGroup,
		})
	}

	return apiRun
}

func MapForecastLineDomainToApi(line domain.ForecastLine) api.ForecastLine {
	return api.ForecastLine{
		Scenario:           line.Scenario,
		Product:            line.Product,
		Region:             line.Region,
		Year:               line.Year,
		RevenueLocal:       line.RevenueLocal,
		RevenueGroup:       line.RevenueGroup,
		COGS:               line.COGS,
		GrossMargin:        line.GrossMargin,
		GrossMarginPct:     line.GrossMarginPct,
		EBITDA:             line.EBITDA,
		OperatingProfit:    line.OperatingProfit,
		OperatingMarginPct: line.OperatingMarginPct,
		Tax:                line.Tax,
		NetIncome:          line.NetIncome,
		NetMarginPct:       line.NetMarginPct,
		CashFlow:           line.CashFlow,
		OperatingExpenses:  line.OperatingExpenses,
		Depreciation:       line.Depreciation,
	}
}

func MapWaterfallDomainToApi(w domain.Waterfall) api.Waterfall {
	return api.Waterfall{
		RevenueGroup:      w.RevenueGroup,
		COGS:              w.COGS,
		OperatingExpenses: w.OperatingExpenses,
		Depreciation:      w.Depreciation,
		Tax:               w.Tax,
		OperatingProfit:   w.OperatingProfit,
		NetIncome:         w.NetIncome,
	}
}
