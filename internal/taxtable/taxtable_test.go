package taxtable_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestquest/internal/taxtable"
)

func TestDefaultTableLoads(t *testing.T) {
	tables, err := taxtable.Default()
	require.NoError(t, err)
	require.NotEmpty(t, tables.Federal)
	assert.NotEmpty(t, tables.Locations())
}

func TestResolve(t *testing.T) {
	tables, err := taxtable.Default()
	require.NoError(t, err)

	j, ok := tables.Resolve("New York, NY")
	require.True(t, ok)
	assert.Equal(t, "NY", j.State.Name)
	assert.IsType(t, taxtable.Brackets{}, j.State.Schedule)
	assert.IsType(t, taxtable.Brackets{}, j.City.Schedule)

	_, ok = tables.Resolve(" New York ,NY ")
	assert.True(t, ok, "separator spacing is normalized")

	_, ok = tables.Resolve("Atlantis, XX")
	assert.False(t, ok)

	j, ok = tables.Resolve("Philadelphia, PA")
	require.True(t, ok)
	assert.Equal(t, taxtable.FlatRate{Rate: 0.0375}, j.City.Schedule)
	assert.Equal(t, taxtable.FlatRate{Rate: 0.0307}, j.State.Schedule)

	j, ok = tables.Resolve("Austin, TX")
	require.True(t, ok)
	assert.Equal(t, taxtable.FlatRate{}, j.City.Schedule, "no local tax")
}

func TestCostAndLocations(t *testing.T) {
	tables, err := taxtable.Default()
	require.NoError(t, err)

	lc, ok := tables.Cost("Boston, MA")
	require.True(t, ok)
	assert.Equal(t, 3000.0, lc.MonthlyRent)
	assert.Equal(t, 550.0, lc.MonthlyFood)
	assert.Equal(t, 0.05, lc.StateSupplementalTaxRate)
	assert.Zero(t, lc.LocalSupplementalTaxRate)

	locs := tables.Locations()
	for i := 1; i < len(locs); i++ {
		assert.Less(t, locs[i-1].Key(), locs[i].Key())
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
  "federal": [{"rate": 0.1, "income_range": 0, "base": 0}, {"rate": 0.2, "income_range": 10000, "base": 1000}],
  "states": [{"state": "ZZ", "income_tax": 0.03}],
  "cities": [{"city": "Springfield", "state": "ZZ", "avg_rent": 900, "avg_food": 300, "supplemental": 0.01}]
}`)
	tables, err := taxtable.Parse(data)
	require.NoError(t, err)

	j, ok := tables.Resolve("Springfield, ZZ")
	require.True(t, ok)
	assert.Equal(t, taxtable.FlatRate{Rate: 0.03}, j.State.Schedule)
	assert.Equal(t, taxtable.FlatRate{Rate: 0.01}, j.City.Schedule)
	assert.Equal(t, 0.01, j.City.SupplementalRate)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validFederal+"states: []\ncities: []\n"), 0o644))

	tables, err := taxtable.Load(path)
	require.NoError(t, err)
	assert.Len(t, tables.Federal, 2)

	_, err = taxtable.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

const validFederal = `federal:
  - { rate: 0.1, income_range: 0, base: 0 }
  - { rate: 0.2, income_range: 10000, base: 1000 }
`

func TestParseRejectsMalformedTables(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty federal", "federal: []\n"},
		{"missing base", "federal:\n  - { rate: 0.1, income_range: 0 }\n"},
		{"missing rate", "federal:\n  - { income_range: 0, base: 0 }\n"},
		{"rate above one", "federal:\n  - { rate: 1.5, income_range: 0, base: 0 }\n"},
		{"negative threshold", "federal:\n  - { rate: 0.1, income_range: -5, base: 0 }\n"},
		{"not ascending", `federal:
  - { rate: 0.1, income_range: 10000, base: 0 }
  - { rate: 0.2, income_range: 5000, base: 0 }
`},
		{"duplicate threshold", `federal:
  - { rate: 0.1, income_range: 0, base: 0 }
  - { rate: 0.2, income_range: 0, base: 0 }
`},
		{"inconsistent base", `federal:
  - { rate: 0.1, income_range: 0, base: 0 }
  - { rate: 0.2, income_range: 10000, base: 5000 }
`},
		{"state with both", validFederal + `states:
  - state: ZZ
    income_tax: 0.05
    tax_brackets:
      - { rate: 0.05, income_range: 0, base: 0 }
`},
		{"state with neither", validFederal + "states:\n  - { state: ZZ }\n"},
		{"state without name", validFederal + "states:\n  - { income_tax: 0.01 }\n"},
		{"duplicate state", validFederal + "states:\n  - { state: ZZ, income_tax: 0 }\n  - { state: ZZ, income_tax: 0 }\n"},
		{"city missing costs", validFederal + "cities:\n  - { city: X, state: ZZ, avg_rent: 100 }\n"},
		{"city with both", validFederal + `cities:
  - city: X
    state: ZZ
    avg_rent: 1
    avg_food: 1
    supplemental: 0.01
    tax_brackets:
      - { rate: 0.01, income_range: 0, base: 0 }
`},
		{"city bad brackets", validFederal + `cities:
  - city: X
    state: ZZ
    avg_rent: 1
    avg_food: 1
    tax_brackets:
      - { rate: 0.01, income_range: 100, base: 0 }
      - { rate: 0.02, income_range: 50, base: 0 }
`},
		{"not yaml", "federal: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := taxtable.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, taxtable.ErrMalformedTable), "got %v", err)
		})
	}
}

func TestTableErrorPinpointsBracket(t *testing.T) {
	_, err := taxtable.Parse([]byte(`federal:
  - { rate: 0.1, income_range: 0, base: 0 }
  - { rate: 0.2, income_range: 10000, base: 7 }
`))
	var te *taxtable.TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "federal", te.Jurisdiction)
	assert.Equal(t, 1, te.Index)
}
