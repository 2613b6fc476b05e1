// Package metrics provides Prometheus metrics collection for HTTP server
// monitoring and the medication lookup pipeline:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - medication_lookup_total: Counter by answering pipeline source
//   - external_request_duration_seconds: Histogram for label/knowledge APIs
//   - interaction_analyses_total: Counter of interaction analyses
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen in last ~5 minutes)",
		},
	)

	// LookupTotals counts medication lookups by the pipeline stage that
	// answered them (essential, officialLabel, knowledgeApi, comprehensive,
	// legacy, notFound).
	LookupTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medication_lookup_total",
			Help: "Medication lookups by answering source",
		},
		[]string{"source"},
	)

	// ExternalRequestDuration tracks latency of calls to the drug label
	// and knowledge APIs.
	ExternalRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_request_duration_seconds",
			Help:    "External API call latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "status"},
	)

	// InteractionAnalyses counts analyses by the worst severity found
	// (contraindicated, major, moderate, minor, none).
	InteractionAnalyses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_analyses_total",
			Help: "Medication interaction analyses by top severity",
		},
		[]string{"top_severity"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(LookupTotals)
	prometheus.MustRegister(ExternalRequestDuration)
	prometheus.MustRegister(InteractionAnalyses)
}
