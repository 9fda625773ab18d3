package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxAmount bounds every money and equity input. Figures derived from
// offers within it stay well inside int64.
const MaxAmount = 1_000_000_000_000

// Validate checks the fields a user supplies when creating or editing an offer.
func (o Offer) Validate() error {
	if strings.TrimSpace(o.Company) == "" {
		return &ValidationError{Msg: "company is required"}
	}
	money := []struct {
		name string
		v    int64
	}{
		{"base", o.Base},
		{"bonus", o.Bonus},
		{"signOn", o.SignOn},
		{"relocation", o.Relocation},
		{"otherExpenses", o.OtherExpenses},
	}
	for _, m := range money {
		if m.v < 0 {
			return &ValidationError{Msg: fmt.Sprintf("%s must be non-negative, got %d", m.name, m.v)}
		}
		if m.v > MaxAmount {
			return &ValidationError{Msg: fmt.Sprintf("%s must be at most %d, got %d", m.name, MaxAmount, m.v)}
		}
	}
	if o.Equity == nil {
		return nil
	}
	if o.Equity.Type != EquityRSU && o.Equity.Type != EquityOptions {
		return &ValidationError{Msg: fmt.Sprintf("unknown equity type %q", o.Equity.Type)}
	}
	nums := []struct {
		name string
		v    float64
	}{
		{"equity.amount", o.Equity.Amount},
		{"equity.vestingPeriodYears", o.Equity.VestingPeriodYears},
		{"equity.marketRatePerUnit", o.Equity.MarketRatePerUnit},
	}
	for _, n := range nums {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) || n.v < 0 {
			return &ValidationError{Msg: fmt.Sprintf("%s must be a non-negative number", n.name)}
		}
		if n.v > MaxAmount {
			return &ValidationError{Msg: fmt.Sprintf("%s must be at most %d", n.name, MaxAmount)}
		}
	}
	return nil
}
