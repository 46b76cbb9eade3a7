package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchRequests counts page reads by outcome ("ok" or the HTTP status / error class).
	FetchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artworks_fetch_requests_total",
		Help: "Total artwork page requests by status",
	}, []string{"status"})

	// FetchDuration observes page read latency.
	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artworks_fetch_duration_seconds",
		Help:    "Artwork page request duration in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	// FetchErrors counts failed page reads by error class.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artworks_fetch_errors_total",
		Help: "Total failed artwork page requests by error class",
	}, []string{"class"})

	// StaleResponses counts page responses dropped because a newer fetch was issued.
	StaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artworks_stale_responses_total",
		Help: "Total artwork page responses discarded as stale",
	})
)
