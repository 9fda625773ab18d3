package offers_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestquest/internal/adapters/memory"
	"nestquest/internal/calc"
	"nestquest/internal/domain"
	"nestquest/internal/services/offers"
	"nestquest/internal/taxtable"
)

func newService(t *testing.T) *offers.Service {
	t.Helper()
	tables, err := taxtable.Default()
	require.NoError(t, err)
	return offers.New(memory.New(), calc.New(tables))
}

func TestCreateValidatesAndTrims(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, domain.Offer{ID: "ignored", Company: "  Acme ", Location: " Austin, TX ", Base: 100000})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", o.ID)
	assert.Equal(t, "Acme", o.Company)
	assert.Equal(t, "Austin, TX", o.Location)

	_, err = svc.Create(ctx, domain.Offer{Company: " "})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Create(ctx, domain.Offer{Company: "x", Bonus: -1})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Create(ctx, domain.Offer{Company: "x", Equity: &domain.Equity{Type: "Warrants"}})
	assert.True(t, domain.IsValidation(err))
}

func TestResubmittingIdenticalValuesKeepsFigures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o, err := svc.Create(ctx, domain.Offer{
		Company: "Acme", Location: "Seattle, WA", Base: 150000, Bonus: 15000, SignOn: 40000, OtherExpenses: 3000,
		Equity: &domain.Equity{Type: domain.EquityRSU, Amount: 1000, MarketRatePerUnit: 100, VestingPeriodYears: 4},
	})
	require.NoError(t, err)
	before, err := svc.Summary(ctx, o.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, o)
	require.NoError(t, err)
	after, err := svc.Summary(ctx, o.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(before, after, cmpopts.IgnoreFields(domain.Offer{}, "CreatedAt", "UpdatedAt")); diff != "" {
		t.Errorf("summary changed after identical update (-before +after):\n%s", diff)
	}
}

func TestUpdateKeepsID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o, err := svc.Create(ctx, domain.Offer{Company: "Acme", Base: 90000})
	require.NoError(t, err)

	o.Base = 95000
	updated, err := svc.Update(ctx, o)
	require.NoError(t, err)
	assert.Equal(t, o.ID, updated.ID)
	assert.Equal(t, int64(95000), updated.Base)

	o.Relocation = -5
	_, err = svc.Update(ctx, o)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Update(ctx, domain.Offer{ID: "nope", Company: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummary(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o, err := svc.Create(ctx, domain.Offer{Company: "Acme", Location: "Austin, TX", Base: 100000})
	require.NoError(t, err)

	s, err := svc.Summary(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), s.TotalCompensation)
	assert.Equal(t, int64(82600), s.EffectiveSalary)
	assert.Equal(t, int64(675000), s.Fire.FireTarget)
	require.NotNil(t, s.Location)
	assert.Equal(t, "Austin", s.Location.City)

	require.NoError(t, svc.Delete(ctx, o.ID))
	_, err = svc.Summary(ctx, o.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
