package forecast

import "github.com/fin-tools/forecast-atlas/pkg/models/domain"

// Calculate maps one input record to its derived financial metrics. It is a
// pure function: no state, no I/O, total over well-formed numeric input.
//
// EBITDA adds Depreciation back before EBIT subtracts it again. The round
// trip cancels algebraically, but both intermediate values are reported
// fields, so the two-step form is kept.
func Calculate(r domain.ForecastInput) domain.ForecastLine {
	revenueLocal := r.UnitsSold * r.PricePerUnit
	revenueGroup := revenueLocal * r.FXRate
	cogs := revenueLocal * r.CogsPct
	grossMargin := revenueLocal - cogs
	ebitda := grossMargin - r.OperatingExpenses + r.Depreciation
	operatingProfit := ebitda - r.Depreciation
	tax := operatingProfit * r.TaxRate
	netIncome := operatingProfit - tax
	cashFlow := netIncome + r.Depreciation

	// Zero revenue is a defined edge case, not an error: all margins are 0.
	var grossMarginPct, operatingMarginPct, netMarginPct float64
	if revenueLocal != 0 {
		grossMarginPct = grossMargin / revenueLocal * 100
		operatingMarginPct = operatingProfit / revenueLocal * 100
		netMarginPct = netIncome / revenueLocal * 100
	}

	return domain.ForecastLine{
		Scenario: r.Scenario,
		Product:  r.Product,
		Region:   r.Region,
		Year:     r.Year,

		RevenueLocal:       revenueLocal,
		RevenueGroup:       revenueGroup,
		COGS:               cogs,
		GrossMargin:        grossMargin,
		GrossMarginPct:     grossMarginPct,
		EBITDA:             ebitda,
		OperatingProfit:    operatingProfit,
		OperatingMarginPct: operatingMarginPct,
		Tax:                tax,
		NetIncome:          netIncome,
		NetMarginPct:       netMarginPct,
		CashFlow:           cashFlow,

		OperatingExpenses: r.OperatingExpenses,
		Depreciation:      r.Depreciation,
	}
}

// CalculateAll computes one line per input, in input order.
func CalculateAll(inputs []domain.ForecastInput) []domain.ForecastLine {
	lines := make([]domain.ForecastLine, 0, len(inputs))
	for _, input := range inputs {
		lines = append(lines, Calculate(input))
	}
	return lines
}

// ApplyOverrides returns a copy of the inputs with the overridden driver
// columns replaced on every row. A set override always applies, zero
// included; unset fields leave the column untouched.
func ApplyOverrides(inputs []domain.ForecastInput, o domain.Overrides) []domain.ForecastInput {
	if o.IsZero() {
		return inputs
	}
	out := make([]domain.ForecastInput, len(inputs))
	copy(out, inputs)
	for i := range out {
		if o.UnitsSold != nil {
			out[i].UnitsSold = *o.UnitsSold
		}
		if o.PricePerUnit != nil {
			out[i].PricePerUnit = *o.PricePerUnit
		}
		if o.FXRate != nil {
			out[i].FXRate = *o.FXRate
		}
	}
	return out
}
