package search

import (
	"context"
	"time"

	"github.com/Kibe27/flightsasa/internal/domain"
	"github.com/Kibe27/flightsasa/internal/inventory"
	"github.com/Kibe27/flightsasa/pkg/logger"
	"github.com/Kibe27/flightsasa/pkg/metrics"
)

type SearchUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.FlightOption, error)
}

// PricingSource supplies the current operator-set pricing level.
type PricingSource interface {
	CurrentPricingLevel(ctx context.Context) (int, error)
}

type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	CabinClass    string
	Travelers     int
}

type SearchService struct {
	pricing   PricingSource
	generator inventory.FlightGenerator
	metrics   *metrics.Metrics
	log       logger.Logger
}

type SearchServiceOption func(*SearchService)

func WithMetrics(m *metrics.Metrics) SearchServiceOption {
	return func(s *SearchService) { s.metrics = m }
}

func WithLogger(log logger.Logger) SearchServiceOption {
	return func(s *SearchService) { s.log = log }
}

func NewSearchService(pricing PricingSource, generator inventory.FlightGenerator, opts ...SearchServiceOption) *SearchService {
	service := &SearchService{pricing: pricing, generator: generator}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Search resolves the current pricing level, generates the synthetic option list and
// drops options that cannot seat the whole party. Zero results is a valid outcome.
func (s *SearchService) Search(ctx context.Context, input SearchInput) ([]domain.FlightOption, error) {
	started := time.Now()

	level, err := s.pricing.CurrentPricingLevel(ctx)
	if err != nil {
		return nil, err
	}

	options, err := s.generator.Generate(inventory.Query{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		CabinClass:    input.CabinClass,
		Travelers:     input.Travelers,
		PricingLevel:  level,
	})
	if err != nil {
		return nil, err
	}

	available := make([]domain.FlightOption, 0, len(options))
	for _, opt := range options {
		if opt.SeatsAvailable >= input.Travelers {
			available = append(available, opt)
		}
	}

	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
		s.metrics.OptionsGenerated.Observe(float64(len(available)))
		s.metrics.SearchDuration.Observe(time.Since(started).Seconds())
	}
	if s.log != nil {
		s.log.Info("flight search served",
			"origin", input.Origin, "destination", input.Destination,
			"date", input.DepartureDate, "pricing_level", level,
			"options", len(available))
	}
	return available, nil
}

var _ SearchUseCase = (*SearchService)(nil)
