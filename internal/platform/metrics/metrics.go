package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "courier",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// Routing metrics
	RoutesPlanned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "routing",
		Name:      "plans_total",
		Help:      "Total route plans computed",
	})

	TwoOptMoves = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "routing",
		Name:      "two_opt_moves_total",
		Help:      "Total 2-opt moves applied during refinement",
	})

	RefineBudgetExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "routing",
		Name:      "refine_budget_exhausted_total",
		Help:      "Total refinement passes stopped by their budget before convergence",
	})

	// Geocoding metrics
	GeocodeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "geocode",
		Name:      "cache_hits_total",
		Help:      "Total geocode lookups served from the cache",
	})

	GeocodeCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "courier",
		Subsystem: "geocode",
		Name:      "cache_misses_total",
		Help:      "Total geocode lookups that required an upstream request",
	})
)
