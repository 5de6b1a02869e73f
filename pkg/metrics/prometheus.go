package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the storefront.
type Metrics struct {
	SearchesTotal    prometheus.Counter
	OptionsGenerated prometheus.Histogram
	SearchDuration   prometheus.Histogram
	BookingEvents    *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_searches_total",
			Help:      "The total number of flight searches served",
		}),
		OptionsGenerated: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_options_per_search",
			Help:      "Number of options returned per search after seat filtering",
			Buckets:   []float64{0, 2, 4, 6, 8, 10, 12},
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_search_duration_seconds",
			Help:      "Time taken to generate a search result",
			Buckets:   prometheus.DefBuckets,
		}),
		BookingEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_events_total",
			Help:      "The total number of booking lifecycle events",
		}, []string{"event"}),
	}
}
