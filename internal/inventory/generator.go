package inventory

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/Kibe27/flightsasa/internal/directory"
	"github.com/Kibe27/flightsasa/internal/domain"
	"github.com/Kibe27/flightsasa/internal/fare"
	"github.com/Kibe27/flightsasa/internal/route"
)

const dateLayout = "2006-01-02"

// Tuning constants. The bounds were inherited from marketplace tuning and have no
// deeper rationale; override via options rather than editing.
const (
	defaultMinAirlinesPerSearch = 8
	defaultMaxAirlinesPerSearch = 12
	defaultOneStopProbability   = 0.4
)

const (
	priceJitterFraction     = 0.075
	domesticPriceFloor      = 6500.0
	internationalPriceFloor = 25000.0
)

// Query describes one flight search. PricingLevel is the operator-set demand dial
// (1..10) resolved by the caller before invocation; the generator never owns it.
type Query struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	CabinClass    string
	Travelers     int
	PricingLevel  int
}

type FlightGenerator interface {
	Generate(q Query) ([]domain.FlightOption, error)
}

// Generator invents plausible flight options for a route. Each call allocates its own
// working set; the only shared state is the random source, which is mutex-guarded so
// concurrent searches don't interleave its sequence.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	now         func() time.Time
	minAirlines int
	maxAirlines int
	oneStopProb float64
}

type Option func(*Generator)

// WithRand replaces the default wall-clock-seeded source. Tests pass a fixed seed to
// pin jitter, schedule and seat outcomes.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithNow replaces the clock used for same-day filtering and seat scarcity.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithAirlineSample overrides the bounds of the airline sample per search.
func WithAirlineSample(min, max int) Option {
	return func(g *Generator) {
		g.minAirlines = min
		g.maxAirlines = max
	}
}

// WithOneStopProbability overrides the chance of an international option having a stop.
func WithOneStopProbability(p float64) Option {
	return func(g *Generator) { g.oneStopProb = p }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		minAirlines: defaultMinAirlinesPerSearch,
		maxAirlines: defaultMaxAirlinesPerSearch,
		oneStopProb: defaultOneStopProbability,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces the synthetic option list for a query, sorted ascending by total
// price. Same-day searches silently drop candidates whose rolled departure slot has
// already passed; the candidate is not re-rolled, so later searches return fewer
// options. An empty result is a valid outcome, not an error.
func (g *Generator) Generate(q Query) ([]domain.FlightOption, error) {
	date, err := time.Parse(dateLayout, q.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("parse departure date: %w", err)
	}

	isDomestic := route.IsKenyan(q.Origin) && route.IsKenyan(q.Destination)
	pool := directory.AirlinePool(isDomestic)

	distance := route.DistanceKm(q.Origin, q.Destination)
	basePrice, err := fare.BaseFare(distance, q.CabinClass)
	if err != nil {
		return nil, err
	}
	multiplier := fare.Multiplier(q.PricingLevel)

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	isToday := now.Format(dateLayout) == q.DepartureDate

	sampleSize := g.minAirlines + g.rng.Intn(g.maxAirlines-g.minAirlines+1)
	if sampleSize > len(pool) {
		sampleSize = len(pool)
	}
	selected := pool[:sampleSize]

	options := make([]domain.FlightOption, 0, len(selected))
	for i, airline := range selected {
		base := float64(basePrice)
		jitter := math.Floor(g.rng.Float64()*(base*priceJitterFraction*2)) - base*priceJitterFraction
		price := (base + jitter) * multiplier

		minPrice := internationalPriceFloor
		if isDomestic {
			minPrice = domesticPriceFloor
		}
		if price < minPrice {
			price = minPrice
		}

		depHour := 6 + g.rng.Intn(16)
		depMinute := g.rng.Intn(60)

		// Same-day slots that are not strictly in the future are dropped, not re-rolled.
		if isToday && (depHour < now.Hour() || (depHour == now.Hour() && depMinute <= now.Minute())) {
			continue
		}

		durationHours := 1 + g.rng.Float64()*1.5
		if !isDomestic {
			durationHours = 3 + g.rng.Float64()*6
		}
		arrHour := depHour + int(durationHours)
		arrMinute := depMinute + int(math.Mod(durationHours, 1)*60)

		stops := 0
		if !isDomestic && g.rng.Float64() < g.oneStopProb {
			stops = 1
		}

		departureAt := time.Date(date.Year(), date.Month(), date.Day(), depHour, depMinute, 0, 0, now.Location())
		hoursUntilDeparture := departureAt.Sub(now).Hours()
		seats := g.rollSeats(hoursUntilDeparture)

		arrivalDate := q.DepartureDate
		if arrHour >= 24 {
			arrivalDate = date.AddDate(0, 0, 1).Format(dateLayout)
		}

		options = append(options, domain.FlightOption{
			ID:           fmt.Sprintf("%s-%d-%d", airline.Code, i, now.UnixMilli()),
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s%d", airline.Code, g.rng.Intn(9000)+100),
			Departure: domain.Endpoint{
				Airport: q.Origin,
				Time:    fmt.Sprintf("%02d:%02d", depHour, depMinute),
				Date:    q.DepartureDate,
			},
			Arrival: domain.Endpoint{
				Airport: q.Destination,
				Time:    fmt.Sprintf("%02d:%02d", arrHour%24, arrMinute%60),
				Date:    arrivalDate,
			},
			Duration:       fmt.Sprintf("%dh %dm", int(durationHours), int(math.Mod(durationHours, 1)*60)),
			Stops:          stops,
			Price:          price * float64(q.Travelers),
			Currency:       "KES",
			CabinClass:     q.CabinClass,
			SeatsAvailable: seats,
		})
	}

	sort.Slice(options, func(a, b int) bool { return options[a].Price < options[b].Price })
	return options, nil
}

// rollSeats models inventory scarcity tightening as departure nears. The figure is a
// synthetic urgency cue, not a real seat count.
func (g *Generator) rollSeats(hoursUntilDeparture float64) int {
	switch {
	case hoursUntilDeparture <= 2:
		return g.rng.Intn(2) + 1
	case hoursUntilDeparture <= 6:
		return g.rng.Intn(5) + 2
	case hoursUntilDeparture <= 24:
		return g.rng.Intn(10) + 5
	default:
		return g.rng.Intn(20) + 10
	}
}

var _ FlightGenerator = (*Generator)(nil)
