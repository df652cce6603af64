// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup outcomes
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_analyses_total",
			Help: "Total number of gap analyses computed, by resolved role",
		},
		[]string{"role"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillgap_analysis_duration_seconds",
			Help:    "Duration of gap analysis computation in seconds",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_cache_requests_total",
			Help: "Analysis cache lookups by result",
		},
		[]string{"result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_http_requests_total",
			Help: "HTTP requests handled by the API server",
		},
		[]string{"method", "path", "status"},
	)
)
