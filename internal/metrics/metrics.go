package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printshop_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "printshop_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ReportsGenerated counts assembled reports by type and outcome
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printshop_reports_generated_total",
			Help: "Total number of report generation attempts",
		},
		[]string{"type", "outcome"},
	)

	// NormalizationAnomalies counts records that needed a lossy fallback
	NormalizationAnomalies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "printshop_normalization_anomalies_total",
			Help: "Records normalized with a lossy default (bad date or amount)",
		},
	)
)
