package calc

import "nestquest/internal/domain"

// Budget splits total compensation into where the money goes over a year.
type Budget struct {
	FederalTax    int64
	StateTax      int64
	LocalTax      int64
	Rent          int64
	Food          int64
	OtherExpenses int64
	// Savings never goes below zero here; see FireProjection.AnnualSavings
	// for the signed figure.
	Savings int64
}

func (c *Calculator) Budget(o domain.Offer) Budget {
	total := TotalAnnualCompensation(o)
	taxes := c.Taxes(float64(total), o.Location)
	rent, food := c.livingCosts(o.Location)

	b := Budget{
		FederalTax:    roundDollars(taxes.Federal),
		StateTax:      roundDollars(taxes.State),
		LocalTax:      roundDollars(taxes.Local),
		Rent:          roundDollars(12 * rent),
		Food:          roundDollars(12 * food),
		OtherExpenses: o.OtherExpenses,
	}
	savings := c.EffectiveAnnualSalary(o) - b.Rent - b.Food - b.OtherExpenses
	b.Savings = max(savings, 0)
	return b
}
