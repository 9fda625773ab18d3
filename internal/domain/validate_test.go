package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"nestquest/internal/domain"
)

func TestOfferValidate(t *testing.T) {
	rsu := func(amount, rate, years float64) *domain.Equity {
		return &domain.Equity{Type: domain.EquityRSU, Amount: amount, MarketRatePerUnit: rate, VestingPeriodYears: years}
	}
	cases := []struct {
		name    string
		offer   domain.Offer
		wantErr string
	}{
		{"minimal", domain.Offer{Company: "Acme"}, ""},
		{"at ceiling", domain.Offer{Company: "Acme", Base: domain.MaxAmount, Equity: rsu(domain.MaxAmount, domain.MaxAmount, 4)}, ""},
		{"missing company", domain.Offer{Company: "  ", Base: 1}, "company"},
		{"negative bonus", domain.Offer{Company: "Acme", Bonus: -1}, "bonus must be non-negative"},
		{"base above ceiling", domain.Offer{Company: "Acme", Base: math.MaxInt64 - 1000}, "base must be at most"},
		{"sign-on above ceiling", domain.Offer{Company: "Acme", SignOn: domain.MaxAmount + 1}, "signOn must be at most"},
		{"unknown equity", domain.Offer{Company: "Acme", Equity: &domain.Equity{Type: "Warrants"}}, "unknown equity type"},
		{"nan amount", domain.Offer{Company: "Acme", Equity: rsu(math.NaN(), 1, 4)}, "equity.amount"},
		{"huge amount", domain.Offer{Company: "Acme", Equity: rsu(1e200, 1, 4)}, "equity.amount must be at most"},
		{"huge rate", domain.Offer{Company: "Acme", Equity: rsu(400, 1e200, 4)}, "equity.marketRatePerUnit must be at most"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.offer.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, domain.IsValidation(err), "got %v", err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseEquityType(t *testing.T) {
	got, ok := domain.ParseEquityType("rsu")
	assert.True(t, ok)
	assert.Equal(t, domain.EquityRSU, got)

	_, ok = domain.ParseEquityType("Warrants")
	assert.False(t, ok)
}
