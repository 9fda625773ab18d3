package calc

import "nestquest/internal/domain"

// AmortizationYears spreads one-time payments (sign-on, relocation).
const AmortizationYears = 4

// EquityAnnualValue is the yearly value of an RSU grant: units times market
// rate, spread over the vesting period. Options are not valued, and any
// missing, non-finite or non-positive input, or a product that overflows,
// yields 0.
func EquityAnnualValue(e *domain.Equity) float64 {
	if e == nil || e.Type != domain.EquityRSU {
		return 0
	}
	for _, v := range []float64{e.Amount, e.MarketRatePerUnit, e.VestingPeriodYears} {
		if !finite(v) || v <= 0 {
			return 0
		}
	}
	v := e.Amount * e.MarketRatePerUnit / e.VestingPeriodYears
	if !finite(v) {
		return 0
	}
	return v
}

func totalCompensation(o domain.Offer) float64 {
	return float64(o.Base) +
		float64(o.Bonus) +
		float64(o.SignOn)/AmortizationYears +
		float64(o.Relocation)/AmortizationYears +
		EquityAnnualValue(o.Equity)
}

// TotalAnnualCompensation is base + bonus + amortized one-time payments +
// annualized equity, rounded to the dollar.
func TotalAnnualCompensation(o domain.Offer) int64 {
	return roundDollars(totalCompensation(o))
}

// EffectiveAnnualSalary is total compensation less federal, state and local
// tax at the offer's location.
func (c *Calculator) EffectiveAnnualSalary(o domain.Offer) int64 {
	total := TotalAnnualCompensation(o)
	taxes := c.Taxes(float64(total), o.Location)
	return roundDollars(float64(total) - taxes.Total())
}
