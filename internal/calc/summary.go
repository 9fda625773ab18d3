package calc

import (
	"golang.org/x/sync/errgroup"

	"nestquest/internal/domain"
	"nestquest/internal/taxtable"
)

// Summary is every figure derived from one offer.
type Summary struct {
	Offer             domain.Offer
	TotalCompensation int64
	EquityAnnualValue int64
	Taxes             TaxBreakdown
	EffectiveSalary   int64
	Budget            Budget
	Fire              FireProjection
	// Location is nil when the offer's location is not in the table.
	Location *taxtable.LocationCost
}

func (c *Calculator) Summarize(o domain.Offer) Summary {
	total := TotalAnnualCompensation(o)
	s := Summary{
		Offer:             o,
		TotalCompensation: total,
		EquityAnnualValue: roundDollars(EquityAnnualValue(o.Equity)),
		Taxes:             c.Taxes(float64(total), o.Location),
		EffectiveSalary:   c.EffectiveAnnualSalary(o),
		Budget:            c.Budget(o),
		Fire:              c.ComputeFireProjection(o),
	}
	if lc, ok := c.tables.Cost(o.Location); ok {
		s.Location = &lc
	}
	return s
}

type Leader string

const (
	LeaderFirst   Leader = "first"
	LeaderSecond  Leader = "second"
	LeaderTie     Leader = "tie"
	LeaderNeither Leader = "neither"
)

// Delta holds second-minus-first differences.
type Delta struct {
	TotalCompensation int64
	EffectiveSalary   int64
	FireTarget        int64
	// FasterToFire compares the 4.25% return horizons.
	FasterToFire Leader
}

type Comparison struct {
	First  Summary
	Second Summary
	Delta  Delta
}

// Compare summarizes both offers concurrently and diffs them.
func (c *Calculator) Compare(first, second domain.Offer) Comparison {
	var out Comparison
	var g errgroup.Group
	g.Go(func() error {
		out.First = c.Summarize(first)
		return nil
	})
	g.Go(func() error {
		out.Second = c.Summarize(second)
		return nil
	})
	_ = g.Wait()

	out.Delta = Delta{
		TotalCompensation: out.Second.TotalCompensation - out.First.TotalCompensation,
		EffectiveSalary:   out.Second.EffectiveSalary - out.First.EffectiveSalary,
		FireTarget:        out.Second.Fire.FireTarget - out.First.Fire.FireTarget,
		FasterToFire:      leader(out.First.Fire.YearsAt4_25Pct, out.Second.Fire.YearsAt4_25Pct),
	}
	return out
}

func leader(a, b Horizon) Leader {
	switch {
	case !a.Reachable && !b.Reachable:
		return LeaderNeither
	case !b.Reachable:
		return LeaderFirst
	case !a.Reachable:
		return LeaderSecond
	case a.Years < b.Years:
		return LeaderFirst
	case b.Years < a.Years:
		return LeaderSecond
	default:
		return LeaderTie
	}
}
