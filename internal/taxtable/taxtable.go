// Package taxtable holds the static reference data the calculators read:
// federal, state and city tax schedules plus per-city living costs.
//
// Tables are loaded once at startup and never mutated afterwards, so a
// *Tables value may be shared freely between goroutines.
package taxtable

import (
	"fmt"
	"sort"
	"strings"
)

// Bracket is one step of a progressive schedule. Income above Threshold is
// taxed at Rate on top of Base, the tax owed at exactly Threshold.
type Bracket struct {
	Rate      float64
	Threshold float64
	Base      float64
}

// Schedule is either a FlatRate or a Brackets sequence.
type Schedule interface {
	isSchedule()
}

// FlatRate taxes every dollar at the same rate, with no threshold.
type FlatRate struct{ Rate float64 }

// Brackets is ordered ascending by Threshold.
type Brackets []Bracket

func (FlatRate) isSchedule() {}
func (Brackets) isSchedule() {}

type State struct {
	Name             string
	Schedule         Schedule
	SupplementalRate float64
}

type City struct {
	City        string
	State       string
	MonthlyRent float64
	MonthlyFood float64
	Schedule    Schedule
	// SupplementalRate is the flat local rate when the city has one, 0 otherwise.
	SupplementalRate float64
}

// Key is the location string offers use, e.g. "New York, NY".
func (c City) Key() string { return c.City + ", " + c.State }

// LocationCost is the per-city cost-of-living view exposed to callers.
type LocationCost struct {
	City                     string
	State                    string
	MonthlyRent              float64
	MonthlyFood              float64
	StateSupplementalTaxRate float64
	LocalSupplementalTaxRate float64
}

func (l LocationCost) Key() string { return l.City + ", " + l.State }

// Jurisdiction is everything tax-related a location resolves to.
type Jurisdiction struct {
	City  City
	State State
}

type Tables struct {
	Federal Brackets
	states  map[string]State
	cities  map[string]City
}

// Resolve looks a location up by its "City, ST" key. Both the city and its
// state must be present for the location to resolve.
func (t *Tables) Resolve(location string) (Jurisdiction, bool) {
	city, ok := t.cities[normalizeKey(location)]
	if !ok {
		return Jurisdiction{}, false
	}
	state, ok := t.states[city.State]
	if !ok {
		return Jurisdiction{}, false
	}
	return Jurisdiction{City: city, State: state}, true
}

// Cost returns the living costs for a location. A city whose state is not in
// the table still reports its costs, with a zero state supplemental rate.
func (t *Tables) Cost(location string) (LocationCost, bool) {
	city, ok := t.cities[normalizeKey(location)]
	if !ok {
		return LocationCost{}, false
	}
	return t.costOf(city), true
}

// Locations lists every city ordered by key.
func (t *Tables) Locations() []LocationCost {
	out := make([]LocationCost, 0, len(t.cities))
	for _, c := range t.cities {
		out = append(out, t.costOf(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

func (t *Tables) State(name string) (State, bool) {
	s, ok := t.states[name]
	return s, ok
}

func (t *Tables) costOf(c City) LocationCost {
	lc := LocationCost{
		City:                     c.City,
		State:                    c.State,
		MonthlyRent:              c.MonthlyRent,
		MonthlyFood:              c.MonthlyFood,
		LocalSupplementalTaxRate: c.SupplementalRate,
	}
	if s, ok := t.states[c.State]; ok {
		lc.StateSupplementalTaxRate = s.SupplementalRate
	}
	return lc
}

func (t *Tables) String() string {
	return fmt.Sprintf("taxtable{federal=%d brackets, states=%d, cities=%d}", len(t.Federal), len(t.states), len(t.cities))
}

// normalizeKey trims surrounding space and collapses the separator so
// "New York,NY" and "New York, NY" match.
func normalizeKey(location string) string {
	city, state, found := strings.Cut(location, ",")
	if !found {
		return strings.TrimSpace(location)
	}
	return strings.TrimSpace(city) + ", " + strings.TrimSpace(state)
}
