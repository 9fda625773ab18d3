package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestquest/internal/adapters/memory"
	"nestquest/internal/domain"
)

func TestOfferLifecycle(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, err := store.CreateOffer(ctx, domain.Offer{
		Company:  "Acme",
		Location: "Austin, TX",
		Base:     100000,
		Equity:   &domain.Equity{Type: domain.EquityRSU, Amount: 400, VestingPeriodYears: 4, MarketRatePerUnit: 100},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// returned equity is a copy
	created.Equity.Amount = 1
	got, err := store.GetOffer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got.Equity.Amount)

	got.Base = 110000
	updated, err := store.UpdateOffer(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(110000), updated.Base)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	second, err := store.CreateOffer(ctx, domain.Offer{Company: "Beta"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)

	list, err := store.ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, store.DeleteOffer(ctx, created.ID))
	_, err = store.GetOffer(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.DeleteOffer(ctx, created.ID), domain.ErrNotFound)
	_, err = store.UpdateOffer(ctx, domain.Offer{ID: "missing", Company: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOffersOrder(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var want []string
	for i := 0; i < 4; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		store.SetClock(func() time.Time { return at })
		o, err := store.CreateOffer(ctx, domain.Offer{Company: "c"})
		require.NoError(t, err)
		want = append(want, o.ID)
	}
	list, err := store.ListOffers(ctx)
	require.NoError(t, err)
	var got []string
	for _, o := range list {
		got = append(got, o.ID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list order mismatch (-want +got):\n%s", diff)
	}
}

func twoOffers(t *testing.T, store *memory.Store) (string, string) {
	t.Helper()
	ctx := context.Background()
	a, err := store.CreateOffer(ctx, domain.Offer{Company: "A"})
	require.NoError(t, err)
	b, err := store.CreateOffer(ctx, domain.Offer{Company: "B"})
	require.NoError(t, err)
	return a.ID, b.ID
}

func TestSelectionReplaceDiscardsStaleNarrative(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, b := twoOffers(t, store)

	sel, err := store.CreateSelection(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Revision)
	assert.Equal(t, domain.NarrativePending, sel.NarrativeStatus)

	job, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)

	replaced, err := store.ReplaceSelection(ctx, sel.ID, b, a)
	require.NoError(t, err)
	assert.Equal(t, 2, replaced.Revision)
	assert.Equal(t, b, replaced.FirstOfferID)

	// a late result for revision 1 is ignored
	require.NoError(t, store.SaveNarrative(ctx, sel.ID, job.Revision, "old text"))
	got, err := store.GetSelection(ctx, sel.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativePending, got.NarrativeStatus)
	assert.Empty(t, got.Narrative)

	// as is a late failure
	require.NoError(t, store.MarkFailed(ctx, job.ID, "timeout"))
	got, err = store.GetSelection(ctx, sel.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativePending, got.NarrativeStatus)

	next, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, next.Revision)
	require.NoError(t, store.SaveNarrative(ctx, sel.ID, next.Revision, "new text"))
	got, err = store.GetSelection(ctx, sel.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativeReady, got.NarrativeStatus)
	assert.Equal(t, "new text", got.Narrative)

	_, found, err = store.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReplaceDropsQueuedJob(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, b := twoOffers(t, store)
	sel, err := store.CreateSelection(ctx, a, b)
	require.NoError(t, err)
	_, err = store.ReplaceSelection(ctx, sel.ID, b, a)
	require.NoError(t, err)

	job, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, job.Revision)
	_, found, err = store.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFinishedJobsLeaveTheQueue(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, b := twoOffers(t, store)

	for i := 0; i < 3; i++ {
		_, err := store.CreateSelection(ctx, a, b)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.ActiveJobs())

	done, _, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.NoError(t, store.MarkCompleted(ctx, done.ID))
	failed, _, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, failed.ID, "boom"))
	assert.Equal(t, 1, store.ActiveJobs())

	status, _ := store.JobStatus(done.ID)
	assert.Equal(t, "completed", status)
	status, _ = store.JobStatus(failed.ID)
	assert.Equal(t, "failed", status)

	// replacing prunes the finished history of that comparison
	_, err = store.ReplaceSelection(ctx, done.SelectionID, b, a)
	require.NoError(t, err)
	status, _ = store.JobStatus(done.ID)
	assert.Empty(t, status)
	assert.Equal(t, 2, store.ActiveJobs())
}

func TestDeletingOfferClearsSelections(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, b := twoOffers(t, store)
	sel, err := store.CreateSelection(ctx, a, b)
	require.NoError(t, err)

	require.NoError(t, store.DeleteOffer(ctx, b))
	_, err = store.GetSelection(ctx, sel.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, found, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found, "job removed with its selection")
}

func TestSelectionErrors(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, _ := twoOffers(t, store)

	_, err := store.CreateSelection(ctx, a, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.ReplaceSelection(ctx, "missing", a, a)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.ClearSelection(ctx, "missing"), domain.ErrNotFound)
	assert.ErrorIs(t, store.SaveNarrative(ctx, "missing", 1, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, store.MarkCompleted(ctx, "missing"), domain.ErrNotFound)
	_, err = store.StartJobForSelection(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCacheExpiry(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", "v", time.Hour))
	text, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", text)

	require.NoError(t, c.Set(ctx, "short", "v", time.Nanosecond))
	time.Sleep(time.Millisecond)
	_, found, err = c.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEventsRecordPayloads(t *testing.T) {
	var ev memory.Events
	require.NoError(t, ev.Publish(context.Background(), "narrative.ready", map[string]int{"revision": 2}))
	got := ev.Published()
	require.Len(t, got, 1)
	assert.Equal(t, "narrative.ready", got[0].Channel)
	assert.JSONEq(t, `{"revision": 2}`, string(got[0].Payload))
}
