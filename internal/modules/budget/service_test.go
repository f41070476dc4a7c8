// README: Budget calculator tests.
package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tripguide/internal/guide"
	"tripguide/internal/modules/locale"
	"tripguide/internal/types"
)

func sampleBudget() guide.Budget {
	return guide.Budget{
		CostPerPersonLocal:        100,
		CostPerPersonOrigin:       110,
		TravelCostPerPersonLocal:  400,
		TravelCostPerPersonOrigin: 440,
		LocalCurrencyCode:         "EUR",
		OriginCurrencyCode:        "USD",
	}
}

func TestCalculateTotals(t *testing.T) {
	res, err := Calculate(locale.New("en"), sampleBudget(), Request{
		People:    "2",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-04",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.People)
	assert.Equal(t, 4, res.Duration)
	assert.Equal(t, 800.0, res.Stay.Local.Amount)
	assert.Equal(t, 880.0, res.Stay.Origin.Amount)
	assert.Equal(t, 800.0, res.Travel.Local.Amount)
	assert.Equal(t, 880.0, res.Travel.Origin.Amount)
	assert.Equal(t, types.NewMoney(1600, "eur"), res.Total.Local)
	assert.Equal(t, types.NewMoney(1760, "usd"), res.Total.Origin)

	assert.Contains(t, res.Total.Formatted, "1,600")
	assert.Contains(t, res.Total.Formatted, "$1,760")
	assert.Contains(t, res.Total.Formatted, " / ")
	assert.Equal(t, "Estimate for 2 people over 4 days.", res.Summary)
}

func TestCalculateSameDayTrip(t *testing.T) {
	res, err := Calculate(locale.New("en"), sampleBudget(), Request{People: "1", StartDate: "2026-05-01", EndDate: "2026-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Duration)
	assert.Equal(t, 500.0, res.Total.Local.Amount)
}

func TestCalculateCenturiesLongTrip(t *testing.T) {
	res, err := Calculate(locale.New("en"), sampleBudget(), Request{People: "1", StartDate: "1900-01-01", EndDate: "2300-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 146098, res.Duration)
}

func TestCalculateDollarCurrenciesStayDistinct(t *testing.T) {
	cases := []struct {
		local, want string
	}{
		{"AUD", "A$100 / $70"},
		{"CAD", "CA$100 / $70"},
	}
	for _, tc := range cases {
		t.Run(tc.local, func(t *testing.T) {
			b := guide.Budget{CostPerPersonLocal: 100, LocalCurrencyCode: tc.local, CostPerPersonOrigin: 70, OriginCurrencyCode: "USD"}
			res, err := Calculate(locale.New("en"), b, Request{People: "1", StartDate: "2026-05-01", EndDate: "2026-05-01"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Stay.Formatted)
		})
	}
}

func TestCalculateValidationOrder(t *testing.T) {
	loc := locale.New("en")
	cases := []struct {
		name string
		req  Request
		key  string
	}{
		{"people missing", Request{StartDate: "2026-05-01", EndDate: "2026-05-04"}, "errorNumPeople"},
		{"people zero", Request{People: "0", StartDate: "2026-05-01", EndDate: "2026-05-04"}, "errorNumPeople"},
		{"people negative beats dates", Request{People: "-1"}, "errorNumPeople"},
		{"people text", Request{People: "two", StartDate: "2026-05-01", EndDate: "2026-05-04"}, "errorNumPeople"},
		{"start missing", Request{People: "2", EndDate: "2026-05-04"}, "errorDateRequired"},
		{"end missing", Request{People: "2", StartDate: "2026-05-01"}, "errorDateRequired"},
		{"unparseable", Request{People: "2", StartDate: "05/01/2026", EndDate: "2026-05-04"}, "errorDateRequired"},
		{"end before start", Request{People: "2", StartDate: "2026-05-04", EndDate: "2026-05-01"}, "errorDateOrder"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Calculate(loc, sampleBudget(), tc.req)
			require.Error(t, err)
			assert.Equal(t, types.KindValidation, types.KindOf(err))
			assert.Equal(t, loc.T(tc.key, nil), types.MessageOf(err))
			assert.Zero(t, res)
		})
	}
}

func TestCalculateLocalizedError(t *testing.T) {
	_, err := Calculate(locale.New("es"), sampleBudget(), Request{People: "2", StartDate: "2026-05-04", EndDate: "2026-05-01"})
	require.Error(t, err)
	assert.Equal(t, "La fecha de regreso no puede ser anterior a la de inicio.", types.MessageOf(err))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,760", Format(language.English, types.NewMoney(1760, "USD")))
	assert.Equal(t, "$12.5", Format(language.English, types.NewMoney(12.5, "USD")))
	assert.Equal(t, "$0.33", Format(language.English, types.NewMoney(1.0/3, "USD")))
	assert.Equal(t, "A$100", Format(language.English, types.NewMoney(100, "AUD")))
	assert.Equal(t, "ZZZ 5", Format(language.English, types.NewMoney(5, "zzz")))
	assert.Equal(t, "5", Format(language.English, types.NewMoney(5, "")))
}

func TestFormatIndianGrouping(t *testing.T) {
	b := sampleBudget()
	b.OriginCurrencyCode = "INR"
	b.CostPerPersonOrigin = 37500
	b.TravelCostPerPersonOrigin = 0
	res, err := Calculate(locale.New("en"), b, Request{People: "1", StartDate: "2026-05-01", EndDate: "2026-05-04"})
	require.NoError(t, err)
	assert.Equal(t, 150000.0, res.Total.Origin.Amount)
	assert.Contains(t, res.Total.Formatted, "1,50,000")
}
