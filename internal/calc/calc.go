// Package calc computes the financial figures for an offer: total
// compensation, progressive tax, effective salary, budget and FIRE
// projections.
//
// Every function here is pure. A Calculator only reads its reference tables,
// so one instance may serve any number of concurrent callers.
package calc

import (
	"math"

	"nestquest/internal/taxtable"
)

// Living-cost fallbacks for locations missing from the reference table.
const (
	DefaultMonthlyRent = 2000
	DefaultMonthlyFood = 500
)

type Calculator struct {
	tables *taxtable.Tables
}

func New(tables *taxtable.Tables) *Calculator {
	return &Calculator{tables: tables}
}

func (c *Calculator) Tables() *taxtable.Tables { return c.tables }

// roundDollars rounds half up, matching how the figures are displayed.
// Values outside the int64 range saturate and NaN becomes 0.
func roundDollars(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Floor(v + 0.5))
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
