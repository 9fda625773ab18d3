package calc

import (
	"math"

	"nestquest/internal/domain"
)

// FireMultiple is the nest egg as a multiple of annual expenses (the 4% rule).
const FireMultiple = 25

// Annual return assumptions for the growth scenarios.
const (
	ModerateReturn   = 0.0425
	AggressiveReturn = 0.10
)

// Horizon is the time to reach a target. Reachable is false when savings are
// zero or negative; Years is then 0 and must not be displayed.
type Horizon struct {
	Years     float64
	Reachable bool
}

var unreachable = Horizon{}

type FireProjection struct {
	AnnualExpenses int64
	AnnualSavings  int64
	FireTarget     int64
	YearsAt0Pct    Horizon
	YearsAt4_25Pct Horizon
	YearsAt10Pct   Horizon
}

// YearsToTarget inverts the future value of an annuity,
// FV = P((1+r)^n - 1)/r, for n. With r == 0 it is plain target/savings.
func YearsToTarget(target, savings, rate float64) Horizon {
	if savings <= 0 || !finite(savings) || !finite(target) || target < 0 {
		return unreachable
	}
	ratio := target / savings
	if rate == 0 {
		return Horizon{Years: ratio, Reachable: true}
	}
	n := math.Log1p(ratio*rate) / math.Log1p(rate)
	if !finite(n) || n < 0 {
		return unreachable
	}
	return Horizon{Years: n, Reachable: true}
}

// livingCosts returns the monthly rent and food for a location, falling back
// to the defaults when the location is unknown.
func (c *Calculator) livingCosts(location string) (rent, food float64) {
	if lc, ok := c.tables.Cost(location); ok {
		return lc.MonthlyRent, lc.MonthlyFood
	}
	return DefaultMonthlyRent, DefaultMonthlyFood
}

// AnnualExpenses is 12 months of rent and food plus the offer's other
// annual expenses.
func (c *Calculator) AnnualExpenses(o domain.Offer) int64 {
	rent, food := c.livingCosts(o.Location)
	return roundDollars(12*rent + 12*food + float64(o.OtherExpenses))
}

// ComputeFireProjection derives the FIRE target and the years needed to
// reach it with no growth, 4.25% and 10% annual returns.
func (c *Calculator) ComputeFireProjection(o domain.Offer) FireProjection {
	expenses := c.AnnualExpenses(o)
	savings := c.EffectiveAnnualSalary(o) - expenses
	target := expenses * FireMultiple

	return FireProjection{
		AnnualExpenses: expenses,
		AnnualSavings:  savings,
		FireTarget:     target,
		YearsAt0Pct:    YearsToTarget(float64(target), float64(savings), 0),
		YearsAt4_25Pct: YearsToTarget(float64(target), float64(savings), ModerateReturn),
		YearsAt10Pct:   YearsToTarget(float64(target), float64(savings), AggressiveReturn),
	}
}
