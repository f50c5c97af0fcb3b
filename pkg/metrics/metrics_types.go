package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Ingest Metrics
	IngestTransactionsTotal *prometheus.CounterVec
	IngestItemsTotal        *prometheus.CounterVec
	IngestDuration          *prometheus.HistogramVec
	IngestErrorsTotal       *prometheus.CounterVec

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Graph Metrics
	GraphItemsTotal        prometheus.Gauge
	GraphPairsTotal        prometheus.Gauge
	GraphTransactionsTotal prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initHTTPMetrics()
	r.initIngestMetrics()
	r.initQueryMetrics()
	r.initGraphMetrics()

	return r
}

// PrometheusRegistry returns the underlying prometheus registry for the
// /metrics handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
