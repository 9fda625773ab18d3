package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "nestquest/internal/adapters/http"
	"nestquest/internal/adapters/memory"
	"nestquest/internal/api"
	"nestquest/internal/calc"
	"nestquest/internal/services/comparisons"
	"nestquest/internal/services/narrative"
	"nestquest/internal/services/offers"
	"nestquest/internal/taxtable"
)

type echoNarrator struct{}

func (echoNarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	return "narrative for a prompt of " + narrative.FormatMoney(int64(len(prompt))) + " bytes", nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	tables, err := taxtable.Default()
	require.NoError(t, err)
	c := calc.New(tables)
	store := memory.New()
	gen := narrative.New(store, store, c, echoNarrator{}, memory.NewCache(), &memory.Events{}, narrative.Options{}, nil)
	srv := httpadapter.New(offers.New(store, c), comparisons.New(store, store, c), store, gen, tables, nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthzAndLocations(t *testing.T) {
	ts := newTestServer(t)

	var h api.Health
	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/healthz", nil, &h))
	assert.Equal(t, "ok", h.Status)

	var locs []api.Location
	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/locations", nil, &locs))
	require.NotEmpty(t, locs)
	keys := map[string]bool{}
	for _, l := range locs {
		keys[l.Key] = true
	}
	assert.True(t, keys["Austin, TX"])
}

func TestOfferCRUDAndSummary(t *testing.T) {
	ts := newTestServer(t)

	var created api.Offer
	status := do(t, http.MethodPost, ts.URL+"/offers", api.OfferInput{
		Company: "Acme", Location: "Austin, TX", Base: 100000,
		Equity: &api.Equity{Type: "rsu", Amount: 400, VestingPeriodYears: 4, MarketRatePerUnit: 100},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.Id)
	assert.Equal(t, "RSU", created.Equity.Type)

	var sum api.Summary
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/offers/"+created.Id+"/summary", nil, &sum))
	assert.Equal(t, int64(110000), sum.TotalCompensation)
	assert.Equal(t, int64(10000), sum.EquityAnnualValue)
	require.NotNil(t, sum.Location)
	assert.Equal(t, 1800.0, sum.Location.MonthlyRent)
	assert.True(t, sum.Fire.YearsAt0Pct.Reachable)
	require.NotNil(t, sum.Fire.YearsAt0Pct.Years)

	var updated api.Offer
	in := inputFrom(created)
	in.Base = 120000
	require.Equal(t, http.StatusOK, do(t, http.MethodPut, ts.URL+"/offers/"+created.Id, in, &updated))
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, int64(120000), updated.Base)

	var list []api.Offer
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/offers", nil, &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusNoContent, do(t, http.MethodDelete, ts.URL+"/offers/"+created.Id, nil, nil))
	var e api.Error
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, ts.URL+"/offers/"+created.Id, nil, &e))
	assert.Equal(t, "not found", e.Error)
}

func inputFrom(o api.Offer) api.OfferInput {
	return api.OfferInput{
		Company:       o.Company,
		Location:      o.Location,
		Base:          o.Base,
		Bonus:         o.Bonus,
		SignOn:        o.SignOn,
		Relocation:    o.Relocation,
		OtherExpenses: o.OtherExpenses,
		Equity:        o.Equity,
	}
}

func TestPutIdenticalOfferKeepsFigures(t *testing.T) {
	ts := newTestServer(t)

	var created api.Offer
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, ts.URL+"/offers", api.OfferInput{
		Company: "Acme", Location: "Seattle, WA", Base: 150000, Bonus: 15000, SignOn: 20000, OtherExpenses: 6000,
		Equity: &api.Equity{Type: "Options", Amount: 1000, VestingPeriodYears: 4, MarketRatePerUnit: 12.5, VestingSchedule: "monthly"},
	}, &created))

	var before api.Summary
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/offers/"+created.Id+"/summary", nil, &before))

	var updated api.Offer
	require.Equal(t, http.StatusOK, do(t, http.MethodPut, ts.URL+"/offers/"+created.Id, inputFrom(created), &updated))
	assert.Equal(t, inputFrom(created), inputFrom(updated))
	assert.Equal(t, created.CreatedAt.UTC(), updated.CreatedAt.UTC())

	var after api.Summary
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/offers/"+created.Id+"/summary", nil, &after))
	before.Offer.UpdatedAt, after.Offer.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, before, after)
}

func TestPutUnknownOffer(t *testing.T) {
	ts := newTestServer(t)

	var e api.Error
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPut, ts.URL+"/offers/nope", api.OfferInput{Company: "Acme"}, &e))
	assert.Equal(t, "not found", e.Error)
}

func TestOfferValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	var e api.Error
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, ts.URL+"/offers", api.OfferInput{Base: 1}, &e))
	assert.Contains(t, e.Error, "company")

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, ts.URL+"/offers",
		api.OfferInput{Company: "x", Equity: &api.Equity{Type: "Warrants"}}, &e))
	assert.Contains(t, e.Error, "equity type")

	resp, err := http.Post(ts.URL+"/offers", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnreachableFireSerializesAsNull(t *testing.T) {
	ts := newTestServer(t)

	var created api.Offer
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, ts.URL+"/offers",
		api.OfferInput{Company: "Tiny", Location: "Boston, MA", Base: 10000}, &created))

	resp, err := http.Get(ts.URL + "/offers/" + created.Id + "/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	var raw struct {
		Fire map[string]json.RawMessage `json:"fire"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `{"years": null, "reachable": false}`, string(raw.Fire["yearsAt4_25Pct"]))
	assert.JSONEq(t, `{"years": null, "reachable": false}`, string(raw.Fire["yearsAt0Pct"]))
}

func createPair(t *testing.T, ts *httptest.Server) (string, string) {
	t.Helper()
	var a, b api.Offer
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, ts.URL+"/offers",
		api.OfferInput{Company: "A", Location: "Austin, TX", Base: 100000}, &a))
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, ts.URL+"/offers",
		api.OfferInput{Company: "B", Location: "Seattle, WA", Base: 140000}, &b))
	return a.Id, b.Id
}

func TestComparisonLifecycle(t *testing.T) {
	ts := newTestServer(t)
	a, b := createPair(t, ts)

	var cmp api.Comparison
	status := do(t, http.MethodPost, ts.URL+"/comparisons", api.SelectionInput{FirstOfferId: a, SecondOfferId: b}, &cmp)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, api.NarrativeStatusPending, cmp.Narrative.Status)
	assert.Equal(t, "A", cmp.First.Offer.Company)
	assert.Equal(t, int64(40000), cmp.Delta.TotalCompensation)

	var waited api.Comparison
	status = do(t, http.MethodPut, ts.URL+"/comparisons/"+cmp.Id+"?wait=true&timeout=5",
		api.SelectionInput{FirstOfferId: b, SecondOfferId: a}, &waited)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, waited.Revision)
	assert.Equal(t, api.NarrativeStatusReady, waited.Narrative.Status)
	assert.NotEmpty(t, waited.Narrative.Text)
	assert.Equal(t, "B", waited.First.Offer.Company)

	var got api.Comparison
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/comparisons/"+cmp.Id, nil, &got))
	assert.Equal(t, waited.Narrative.Text, got.Narrative.Text)

	assert.Equal(t, http.StatusNoContent, do(t, http.MethodDelete, ts.URL+"/comparisons/"+cmp.Id, nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, ts.URL+"/comparisons/"+cmp.Id, nil, &api.Error{}))
}

func TestComparisonErrors(t *testing.T) {
	ts := newTestServer(t)
	a, _ := createPair(t, ts)

	var e api.Error
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, ts.URL+"/comparisons",
		api.SelectionInput{FirstOfferId: a, SecondOfferId: a}, &e))
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPost, ts.URL+"/comparisons",
		api.SelectionInput{FirstOfferId: a, SecondOfferId: "nope"}, &e))
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPost, ts.URL+"/comparisons?wait=perhaps",
		api.SelectionInput{FirstOfferId: a, SecondOfferId: a}, &e))
	assert.Contains(t, e.Error, "wait")
}
