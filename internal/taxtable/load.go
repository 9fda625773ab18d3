package taxtable

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrMalformedTable is wrapped by every load-time validation failure.
var ErrMalformedTable = errors.New("malformed tax table")

// baseTolerance absorbs the whole-dollar rounding found in published tables.
const baseTolerance = 1.0

// TableError pinpoints the offending jurisdiction and bracket.
type TableError struct {
	Jurisdiction string
	Index        int // bracket index, -1 when the error is not bracket specific
	Reason       string
}

func (e *TableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("taxtable: %s: %s", e.Jurisdiction, e.Reason)
	}
	return fmt.Sprintf("taxtable: %s bracket %d: %s", e.Jurisdiction, e.Index, e.Reason)
}

func (e *TableError) Unwrap() error { return ErrMalformedTable }

//go:embed data/tax_information.yaml
var bundled []byte

var defaultTables = sync.OnceValues(func() (*Tables, error) { return Parse(bundled) })

// Default returns the table bundled with the binary.
func Default() (*Tables, error) { return defaultTables() }

// Load reads a YAML or JSON table from path.
func Load(path string) (*Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tax table: %w", err)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// The file layout. JSON is a subset of YAML, so one decoder serves both.
type rawBracket struct {
	Rate        *float64 `yaml:"rate"`
	IncomeRange *float64 `yaml:"income_range"`
	Base        *float64 `yaml:"base"`
}

type rawState struct {
	State           string       `yaml:"state"`
	IncomeTax       *float64     `yaml:"income_tax"`
	TaxBrackets     []rawBracket `yaml:"tax_brackets"`
	SupplementalTax *float64     `yaml:"supplemental_tax"`
}

type rawCity struct {
	City         string       `yaml:"city"`
	State        string       `yaml:"state"`
	AvgRent      *float64     `yaml:"avg_rent"`
	AvgFood      *float64     `yaml:"avg_food"`
	Supplemental *float64     `yaml:"supplemental"`
	TaxBrackets  []rawBracket `yaml:"tax_brackets"`
}

type rawTables struct {
	Federal []rawBracket `yaml:"federal"`
	States  []rawState   `yaml:"states"`
	Cities  []rawCity    `yaml:"cities"`
}

// Parse decodes and validates a table. Any integrity problem rejects the
// whole table.
func Parse(data []byte) (*Tables, error) {
	var raw rawTables
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedTable, err)
	}

	federal, err := parseBrackets("federal", raw.Federal)
	if err != nil {
		return nil, err
	}

	t := &Tables{
		Federal: federal,
		states:  make(map[string]State, len(raw.States)),
		cities:  make(map[string]City, len(raw.Cities)),
	}

	for i, rs := range raw.States {
		if rs.State == "" {
			return nil, &TableError{Jurisdiction: fmt.Sprintf("states[%d]", i), Index: -1, Reason: "missing state"}
		}
		name := "state " + rs.State
		if _, dup := t.states[rs.State]; dup {
			return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "duplicate entry"}
		}
		sched, err := parseSchedule(name, rs.IncomeTax, rs.TaxBrackets, false)
		if err != nil {
			return nil, err
		}
		st := State{Name: rs.State, Schedule: sched}
		if rs.SupplementalTax != nil {
			if err := checkRate(name, -1, *rs.SupplementalTax); err != nil {
				return nil, err
			}
			st.SupplementalRate = *rs.SupplementalTax
		}
		t.states[rs.State] = st
	}

	for i, rc := range raw.Cities {
		if rc.City == "" || rc.State == "" {
			return nil, &TableError{Jurisdiction: fmt.Sprintf("cities[%d]", i), Index: -1, Reason: "missing city or state"}
		}
		c := City{City: rc.City, State: rc.State}
		name := "city " + c.Key()
		if _, dup := t.cities[c.Key()]; dup {
			return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "duplicate entry"}
		}
		if rc.AvgRent == nil || rc.AvgFood == nil {
			return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "missing avg_rent or avg_food"}
		}
		if *rc.AvgRent < 0 || *rc.AvgFood < 0 {
			return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "negative living cost"}
		}
		c.MonthlyRent, c.MonthlyFood = *rc.AvgRent, *rc.AvgFood
		sched, err := parseSchedule(name, rc.Supplemental, rc.TaxBrackets, true)
		if err != nil {
			return nil, err
		}
		c.Schedule = sched
		if fr, ok := sched.(FlatRate); ok {
			c.SupplementalRate = fr.Rate
		}
		t.cities[c.Key()] = c
	}

	return t, nil
}

// parseSchedule turns the flat-or-brackets pair into a Schedule. Cities may
// omit both (no local tax); states may not.
func parseSchedule(name string, flat *float64, brackets []rawBracket, optional bool) (Schedule, error) {
	switch {
	case flat != nil && len(brackets) > 0:
		return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "has both a flat rate and tax brackets"}
	case flat != nil:
		if err := checkRate(name, -1, *flat); err != nil {
			return nil, err
		}
		return FlatRate{Rate: *flat}, nil
	case len(brackets) > 0:
		return parseBrackets(name, brackets)
	case optional:
		return FlatRate{}, nil
	default:
		return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "has neither a flat rate nor tax brackets"}
	}
}

func parseBrackets(name string, raw []rawBracket) (Brackets, error) {
	if len(raw) == 0 {
		return nil, &TableError{Jurisdiction: name, Index: -1, Reason: "no brackets"}
	}
	out := make(Brackets, 0, len(raw))
	for i, rb := range raw {
		if rb.Rate == nil || rb.IncomeRange == nil || rb.Base == nil {
			return nil, &TableError{Jurisdiction: name, Index: i, Reason: "missing rate, income_range or base"}
		}
		b := Bracket{Rate: *rb.Rate, Threshold: *rb.IncomeRange, Base: *rb.Base}
		if err := checkRate(name, i, b.Rate); err != nil {
			return nil, err
		}
		if !finite(b.Threshold) || b.Threshold < 0 || !finite(b.Base) || b.Base < 0 {
			return nil, &TableError{Jurisdiction: name, Index: i, Reason: "income_range and base must be non-negative"}
		}
		if i > 0 {
			prev := out[i-1]
			if b.Threshold <= prev.Threshold {
				return nil, &TableError{Jurisdiction: name, Index: i, Reason: fmt.Sprintf("income_range %.0f not above previous %.0f", b.Threshold, prev.Threshold)}
			}
			want := prev.Base + (b.Threshold-prev.Threshold)*prev.Rate
			if math.Abs(b.Base-want) > baseTolerance {
				return nil, &TableError{Jurisdiction: name, Index: i, Reason: fmt.Sprintf("base %.2f inconsistent with previous bracket (want %.2f)", b.Base, want)}
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func checkRate(name string, idx int, rate float64) error {
	if !finite(rate) || rate < 0 || rate > 1 {
		return &TableError{Jurisdiction: name, Index: idx, Reason: fmt.Sprintf("rate %v outside [0, 1]", rate)}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
