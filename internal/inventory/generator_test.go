package inventory

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Kibe27/flightsasa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestGenerator(seed int64, now time.Time, opts ...Option) *Generator {
	base := []Option{
		WithRand(rand.New(rand.NewSource(seed))),
		WithNow(fixedClock(now)),
	}
	return NewGenerator(append(base, opts...)...)
}

func TestGenerate_DomesticProperties(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(42, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-13",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	// Only six carriers operate domestically, all below the sample minimum, and no
	// same-day filtering applies to a future date.
	assert.Len(t, options, 6)

	for _, opt := range options {
		assert.Equal(t, 0, opt.Stops, "domestic flights are always nonstop")
		assert.GreaterOrEqual(t, opt.Price, 6500.0)
		assert.True(t, opt.Airline.OperatesDomestic, "%s is not a domestic carrier", opt.Airline.Code)
		assert.Equal(t, "NBO", opt.Departure.Airport)
		assert.Equal(t, "MBA", opt.Arrival.Airport)
		assert.Equal(t, "2025-03-13", opt.Departure.Date)
		assert.Equal(t, "KES", opt.Currency)
		assert.Equal(t, domain.CabinEconomy, opt.CabinClass)
		assert.True(t, strings.HasPrefix(opt.FlightNumber, opt.Airline.Code))
		// More than 24h out, seats come from the widest bucket.
		assert.GreaterOrEqual(t, opt.SeatsAvailable, 10)
		assert.LessOrEqual(t, opt.SeatsAvailable, 29)
	}
}

func TestGenerate_SortedByPrice(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(7, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinBusiness,
		Travelers:     1,
		PricingLevel:  5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, options)

	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i-1].Price, options[i].Price)
	}
}

func TestGenerate_InternationalProperties(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(99, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	// Sample bounds: between 8 and 12 airlines from a 19-carrier pool.
	assert.GreaterOrEqual(t, len(options), 8)
	assert.LessOrEqual(t, len(options), 12)

	for _, opt := range options {
		assert.Contains(t, []int{0, 1}, opt.Stops)
		assert.GreaterOrEqual(t, opt.Price, 25000.0)
		assert.True(t, opt.Airline.OperatesInternational)
		// Long legs may land the next calendar day, never later.
		assert.Contains(t, []string{"2025-04-01", "2025-04-02"}, opt.Arrival.Date)
	}
}

func TestGenerate_SameDayDropsPastSlots(t *testing.T) {
	// Mocked "now" of 20:00 on the search date: any option that survives must depart
	// strictly later the same evening.
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	gen := newTestGenerator(3, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-03-10",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	for _, opt := range options {
		assert.Greater(t, opt.Departure.Time, "20:00")
	}
}

func TestGenerate_SameDayLateNightIsEmpty(t *testing.T) {
	// Departure slots only roll in [06:00, 22:00); at 23:59 every candidate has
	// already left, and discarded candidates are never re-rolled.
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	gen := newTestGenerator(1, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-10",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestGenerate_SeatScarcityBuckets(t *testing.T) {
	// Same-day early-morning search: seat counts must match the bucket implied by
	// each option's own departure slot.
	now := time.Date(2025, 3, 10, 5, 30, 0, 0, time.UTC)
	gen := newTestGenerator(11, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-10",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	for _, opt := range options {
		dep, err := time.Parse("2006-01-02 15:04", opt.Departure.Date+" "+opt.Departure.Time)
		require.NoError(t, err)
		hoursUntil := dep.Sub(now).Hours()

		var lo, hi int
		switch {
		case hoursUntil <= 2:
			lo, hi = 1, 2
		case hoursUntil <= 6:
			lo, hi = 2, 6
		case hoursUntil <= 24:
			lo, hi = 5, 14
		default:
			lo, hi = 10, 29
		}
		assert.GreaterOrEqual(t, opt.SeatsAvailable, lo, "departure %s", opt.Departure.Time)
		assert.LessOrEqual(t, opt.SeatsAvailable, hi, "departure %s", opt.Departure.Time)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	query := Query{
		Origin:        "NBO",
		Destination:   "DXB",
		DepartureDate: "2025-03-20",
		CabinClass:    domain.CabinPremiumEconomy,
		Travelers:     2,
		PricingLevel:  7,
	}

	first, err := newTestGenerator(1234, now).Generate(query)
	require.NoError(t, err)
	second, err := newTestGenerator(1234, now).Generate(query)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed and clock must pin jitter, schedule and seats")

	third, err := newTestGenerator(4321, now).Generate(query)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestGenerate_TravelersMultiplyPrice(t *testing.T) {
	// End-to-end scenario: domestic route, tomorrow, two travelers, neutral pricing.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(21, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-11",
		CabinClass:    domain.CabinEconomy,
		Travelers:     2,
		PricingLevel:  5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, options)

	for i, opt := range options {
		assert.Equal(t, 0, opt.Stops)
		assert.GreaterOrEqual(t, opt.Price, 13000.0, "total price covers both travelers")
		if i > 0 {
			assert.LessOrEqual(t, options[i-1].Price, opt.Price)
		}
	}
}

func TestGenerate_PricingLevelScalesFares(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	query := Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
	}

	// Same seed so jitter and schedule match; only the multiplier differs.
	query.PricingLevel = 1
	low, err := newTestGenerator(55, now).Generate(query)
	require.NoError(t, err)
	query.PricingLevel = 10
	high, err := newTestGenerator(55, now).Generate(query)
	require.NoError(t, err)
	require.Equal(t, len(low), len(high))

	for i := range low {
		assert.Greater(t, high[i].Price, low[i].Price)
	}
}

func TestGenerate_UnknownAirportsStillPrice(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(5, now)

	// Unknown codes fall through to the default distance; no error path exists.
	options, err := gen.Generate(Query{
		Origin:        "AAA",
		Destination:   "ZZZ",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)
	for _, opt := range options {
		assert.GreaterOrEqual(t, opt.Price, 25000.0)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(5, now)

	_, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "next tuesday",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	assert.Error(t, err)

	_, err = gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-13",
		CabinClass:    "Steerage",
		Travelers:     1,
		PricingLevel:  3,
	})
	assert.Error(t, err)
}

func TestGenerate_AirlineSampleOverride(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(17, now, WithAirlineSample(2, 2))

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)
	assert.Len(t, options, 2)
}

func TestGenerate_UniqueIDsPerGeneration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(29, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "LHR",
		DepartureDate: "2025-04-01",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, opt := range options {
		assert.False(t, seen[opt.ID], "duplicate id %s", opt.ID)
		seen[opt.ID] = true
	}
}

func TestGenerate_DurationFormat(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	gen := newTestGenerator(31, now)

	options, err := gen.Generate(Query{
		Origin:        "NBO",
		Destination:   "MBA",
		DepartureDate: "2025-03-13",
		CabinClass:    domain.CabinEconomy,
		Travelers:     1,
		PricingLevel:  3,
	})
	require.NoError(t, err)

	for _, opt := range options {
		var h, m int
		_, err := fmt.Sscanf(opt.Duration, "%dh %dm", &h, &m)
		assert.NoError(t, err, "duration %q", opt.Duration)
		// Domestic legs run 1.0-2.5 hours.
		assert.GreaterOrEqual(t, h, 1)
		assert.LessOrEqual(t, h, 2)
	}
}
