package api

import (
	"math"
	"strings"

	"nestquest/internal/calc"
	"nestquest/internal/domain"
	"nestquest/internal/ports"
	"nestquest/internal/taxtable"
)

// ToDomain converts the input. An equity block with an empty type is
// treated as absent; an unrecognised type is passed through for validation
// to reject.
func (in OfferInput) ToDomain(id string) domain.Offer {
	o := domain.Offer{
		ID:            id,
		Company:       in.Company,
		Location:      in.Location,
		Base:          in.Base,
		Bonus:         in.Bonus,
		SignOn:        in.SignOn,
		Relocation:    in.Relocation,
		OtherExpenses: in.OtherExpenses,
	}
	if in.Equity != nil && strings.TrimSpace(in.Equity.Type) != "" {
		t, ok := domain.ParseEquityType(strings.TrimSpace(in.Equity.Type))
		if !ok {
			t = domain.EquityType(in.Equity.Type)
		}
		o.Equity = &domain.Equity{
			Type:               t,
			Amount:             in.Equity.Amount,
			VestingPeriodYears: in.Equity.VestingPeriodYears,
			VestingSchedule:    in.Equity.VestingSchedule,
			MarketRatePerUnit:  in.Equity.MarketRatePerUnit,
		}
	}
	return o
}

func FromOffer(o domain.Offer) Offer {
	out := Offer{
		Id:            o.ID,
		Company:       o.Company,
		Location:      o.Location,
		Base:          o.Base,
		Bonus:         o.Bonus,
		SignOn:        o.SignOn,
		Relocation:    o.Relocation,
		OtherExpenses: o.OtherExpenses,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Equity != nil {
		out.Equity = &Equity{
			Type:               string(o.Equity.Type),
			Amount:             o.Equity.Amount,
			VestingPeriodYears: o.Equity.VestingPeriodYears,
			VestingSchedule:    o.Equity.VestingSchedule,
			MarketRatePerUnit:  o.Equity.MarketRatePerUnit,
		}
	}
	return out
}

func FromLocation(l taxtable.LocationCost) Location {
	return Location{
		Key:                      l.Key(),
		City:                     l.City,
		State:                    l.State,
		MonthlyRent:              l.MonthlyRent,
		MonthlyFood:              l.MonthlyFood,
		StateSupplementalTaxRate: l.StateSupplementalTaxRate,
		LocalSupplementalTaxRate: l.LocalSupplementalTaxRate,
	}
}

// FromHorizon rounds to hundredths; an unreachable target keeps Years nil so
// it serializes as {"years": null, "reachable": false}.
func FromHorizon(h calc.Horizon) Horizon {
	if !h.Reachable {
		return Horizon{}
	}
	y := math.Round(h.Years*100) / 100
	return Horizon{Years: &y, Reachable: true}
}

func FromSummary(s calc.Summary) Summary {
	out := Summary{
		Offer:             FromOffer(s.Offer),
		TotalCompensation: s.TotalCompensation,
		EquityAnnualValue: s.EquityAnnualValue,
		Taxes: Taxes{
			Federal: s.Budget.FederalTax,
			State:   s.Budget.StateTax,
			Local:   s.Budget.LocalTax,
			Total:   s.TotalCompensation - s.EffectiveSalary,
		},
		EffectiveSalary: s.EffectiveSalary,
		Budget: Budget{
			FederalTax:    s.Budget.FederalTax,
			StateTax:      s.Budget.StateTax,
			LocalTax:      s.Budget.LocalTax,
			Rent:          s.Budget.Rent,
			Food:          s.Budget.Food,
			OtherExpenses: s.Budget.OtherExpenses,
			Savings:       s.Budget.Savings,
		},
		Fire: Fire{
			AnnualExpenses: s.Fire.AnnualExpenses,
			AnnualSavings:  s.Fire.AnnualSavings,
			FireTarget:     s.Fire.FireTarget,
			YearsAt0Pct:    FromHorizon(s.Fire.YearsAt0Pct),
			YearsAt425Pct:  FromHorizon(s.Fire.YearsAt4_25Pct),
			YearsAt10Pct:   FromHorizon(s.Fire.YearsAt10Pct),
		},
	}
	if s.Location != nil {
		l := FromLocation(*s.Location)
		out.Location = &l
	}
	return out
}

// FromComparison flattens the selection and its computed figures into one
// document.
func FromComparison(v ports.ComparisonView) Comparison {
	sel := v.Selection
	return Comparison{
		Id:            sel.ID,
		FirstOfferId:  sel.FirstOfferID,
		SecondOfferId: sel.SecondOfferID,
		Revision:      sel.Revision,
		Narrative: Narrative{
			Status: NarrativeStatus(sel.NarrativeStatus),
			Text:   sel.Narrative,
			Error:  sel.NarrativeError,
		},
		CreatedAt: sel.CreatedAt,
		UpdatedAt: sel.UpdatedAt,
		First:     FromSummary(v.Comparison.First),
		Second:    FromSummary(v.Comparison.Second),
		Delta: Delta{
			TotalCompensation: v.Comparison.Delta.TotalCompensation,
			EffectiveSalary:   v.Comparison.Delta.EffectiveSalary,
			FireTarget:        v.Comparison.Delta.FireTarget,
			FasterToFire:      Leader(v.Comparison.Delta.FasterToFire),
		},
	}
}
