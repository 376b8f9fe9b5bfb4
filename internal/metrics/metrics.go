package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the back office
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Data service metrics (remote fetches against the hosted tables)
	DataFetchesTotal   prometheus.CounterVec
	DataFetchDuration  prometheus.HistogramVec
	DataFetchesDropped prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	PropertiesNormalizedTotal prometheus.CounterVec
	ImportRowsTotal           prometheus.CounterVec
	SessionsActive            prometheus.Gauge
	DocumentUploadsTotal      prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "backoffice_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Data service metrics
		DataFetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_data_fetches_total",
				Help: "Total fetches against the hosted data service by collection and outcome",
			},
			[]string{"collection", "outcome"},
		),
		DataFetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_data_fetch_duration_seconds",
				Help:    "Hosted data service fetch time in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"collection"},
		),
		DataFetchesDropped: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_data_fetches_dropped_total",
				Help: "Fetch responses discarded because a newer fetch superseded them",
			},
			[]string{"collection"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		PropertiesNormalizedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_properties_normalized_total",
				Help: "Property rows normalized by collection and whether defaults were applied",
			},
			[]string{"collection", "defaulted"},
		),
		ImportRowsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_import_rows_total",
				Help: "Spreadsheet import rows by collection and outcome",
			},
			[]string{"collection", "outcome"},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backoffice_sessions_active",
				Help: "Current number of live sessions",
			},
		),
		DocumentUploadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_document_uploads_total",
				Help: "Total client documents uploaded",
			},
		),
	}
}
