package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finadvisor/finadvisor/internal/catalog"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Default())
}

func TestRecommendMidAgeLongLumpsum(t *testing.T) {
	got := newTestEngine().Recommend(Request{
		Age:          30,
		Horizon:      catalog.HorizonLong,
		PeriodYears:  6,
		Contribution: catalog.ContributionLumpsum,
	})
	assert.Equal(t, []string{
		"Real Estate Investment",
		"Fixed Deposit",
		"Gold Investment",
		"Share Market",
		"Index Funds",
		"Startup Investment",
		"REIT",
		"LIC",
	}, got)
}

func TestRecommendSeniorLongLumpsum(t *testing.T) {
	got := newTestEngine().Recommend(Request{
		Age:          70,
		Horizon:      catalog.HorizonLong,
		PeriodYears:  5,
		Contribution: catalog.ContributionLumpsum,
	})
	assert.Equal(t, []string{
		"Fixed Deposit",
		"Gold Investment",
		"Senior Citizen Savings",
		"LIC",
	}, got)
}

func TestRecommendBoundaryInclusivity(t *testing.T) {
	e := NewEngine([]catalog.InvestmentOption{
		{Name: "Bounded", MinAge: 25, MaxAge: 50, Horizon: catalog.HorizonLong, MinPeriodYears: 5, Contribution: catalog.ContributionLumpsum},
	})
	base := Request{Horizon: catalog.HorizonLong, PeriodYears: 5, Contribution: catalog.ContributionLumpsum}

	for _, age := range []int{25, 50} {
		req := base
		req.Age = age
		assert.Equal(t, []string{"Bounded"}, e.Recommend(req), "age %d", age)
	}
	for _, age := range []int{24, 51} {
		req := base
		req.Age = age
		assert.Empty(t, e.Recommend(req), "age %d", age)
	}

	// Period equal to the minimum matches; one below does not.
	req := base
	req.Age = 30
	req.PeriodYears = 5
	assert.NotEmpty(t, e.Recommend(req))
	req.PeriodYears = 4
	assert.Empty(t, e.Recommend(req))
}

func TestRecommendWildcards(t *testing.T) {
	e := NewEngine([]catalog.InvestmentOption{
		{Name: "Anything", MinAge: 0, MaxAge: 100, Horizon: catalog.HorizonBoth, MinPeriodYears: 0, Contribution: catalog.ContributionBoth},
	})

	for _, h := range []catalog.Horizon{catalog.HorizonShort, catalog.HorizonLong} {
		for _, c := range []catalog.Contribution{catalog.ContributionLumpsum, catalog.ContributionRecurring} {
			got := e.Recommend(Request{Age: 40, Horizon: h, PeriodYears: 0, Contribution: c})
			assert.Equal(t, []string{"Anything"}, got, "%s/%s", h, c)
		}
	}
}

func TestRecommendHorizonAndTypeMustMatch(t *testing.T) {
	got := newTestEngine().Recommend(Request{
		Age:          30,
		Horizon:      catalog.HorizonShort,
		PeriodYears:  6,
		Contribution: catalog.ContributionLumpsum,
	})
	// Only "both"-horizon entries survive a short horizon.
	assert.Equal(t, []string{"Fixed Deposit", "Gold Investment", "LIC"}, got)
}

func TestRecommendDeterminism(t *testing.T) {
	e := newTestEngine()
	req := Request{Age: 30, Horizon: catalog.HorizonLong, PeriodYears: 6, Contribution: catalog.ContributionLumpsum}
	first := e.Recommend(req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Recommend(req))
	}
}

func TestRecommendAmountNotUsed(t *testing.T) {
	e := newTestEngine()
	req := Request{Age: 30, Horizon: catalog.HorizonLong, PeriodYears: 6, Contribution: catalog.ContributionLumpsum}
	low, high := req, req
	low.Amount = 1
	high.Amount = 10_000_000
	assert.Equal(t, e.Recommend(low), e.Recommend(high))
}

func ptr[T any](v T) *T { return &v }

func TestParseRequestOK(t *testing.T) {
	req, err := ParseRequest(WireRequest{
		Age:            ptr(30),
		Horizon:        ptr("Long"),
		Period:         ptr(6),
		InvestmentType: ptr("LUMPSUM"),
		Amount:         ptr(5000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.HorizonLong, req.Horizon)
	assert.Equal(t, catalog.ContributionLumpsum, req.Contribution)
	assert.Equal(t, 30, req.Age)
	assert.Equal(t, 6, req.PeriodYears)
}

func TestParseRequestMissingFields(t *testing.T) {
	full := WireRequest{
		Age:            ptr(30),
		Horizon:        ptr("long"),
		Period:         ptr(6),
		InvestmentType: ptr("lumpsum"),
		Amount:         ptr(5000.0),
	}

	for name, mutate := range map[string]func(*WireRequest){
		"age":             func(w *WireRequest) { w.Age = nil },
		"horizon":         func(w *WireRequest) { w.Horizon = nil },
		"period":          func(w *WireRequest) { w.Period = nil },
		"investment_type": func(w *WireRequest) { w.InvestmentType = nil },
		"amount":          func(w *WireRequest) { w.Amount = nil },
	} {
		w := full
		mutate(&w)
		_, err := ParseRequest(w)
		assert.Error(t, err, "missing %s", name)
	}
}

func TestParseRequestRejectsUnknownEnums(t *testing.T) {
	w := WireRequest{
		Age:            ptr(30),
		Horizon:        ptr("medium"),
		Period:         ptr(6),
		InvestmentType: ptr("lumpsum"),
		Amount:         ptr(5000.0),
	}
	_, err := ParseRequest(w)
	require.Error(t, err)

	w.Horizon = ptr("long")
	w.InvestmentType = ptr("weekly")
	_, err = ParseRequest(w)
	require.Error(t, err)

	// "both" is a catalog wildcard, not a client value.
	w.InvestmentType = ptr("both")
	_, err = ParseRequest(w)
	require.Error(t, err)
}

func TestParseRequestNegativeValues(t *testing.T) {
	w := WireRequest{
		Age:            ptr(-1),
		Horizon:        ptr("long"),
		Period:         ptr(6),
		InvestmentType: ptr("lumpsum"),
		Amount:         ptr(5000.0),
	}
	_, err := ParseRequest(w)
	assert.Error(t, err)

	w.Age = ptr(0)
	_, err = ParseRequest(w)
	assert.NoError(t, err, "age 0 is valid")
}
