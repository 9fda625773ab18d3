package calc

import "nestquest/internal/taxtable"

// ComputeTax walks the brackets from the top down and applies the first one
// whose threshold lies strictly below income. Income at or below the lowest
// threshold owes nothing.
func ComputeTax(income float64, brackets taxtable.Brackets) float64 {
	for i := len(brackets) - 1; i >= 0; i-- {
		b := brackets[i]
		if b.Threshold < income {
			return b.Base + (income-b.Threshold)*b.Rate
		}
	}
	return 0
}

// ScheduleTax evaluates either representation of a jurisdiction's schedule.
func ScheduleTax(income float64, s taxtable.Schedule) float64 {
	switch s := s.(type) {
	case taxtable.FlatRate:
		return income * s.Rate
	case taxtable.Brackets:
		return ComputeTax(income, s)
	default:
		return 0
	}
}

type TaxBreakdown struct {
	Federal float64
	State   float64
	Local   float64
}

func (t TaxBreakdown) Total() float64 { return t.Federal + t.State + t.Local }

// Taxes computes the three tax components for income earned at location.
// An unknown location owes no tax at all.
func (c *Calculator) Taxes(income float64, location string) TaxBreakdown {
	j, ok := c.tables.Resolve(location)
	if !ok {
		return TaxBreakdown{}
	}
	return TaxBreakdown{
		Federal: ComputeTax(income, c.tables.Federal),
		State:   ScheduleTax(income, j.State.Schedule),
		Local:   ScheduleTax(income, j.City.Schedule),
	}
}
