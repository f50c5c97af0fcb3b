package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestTransactionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "copurchase_ingest_transactions_total",
			Help: "Total number of transactions folded into the graph",
		},
		[]string{"source"},
	)

	r.IngestItemsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "copurchase_ingest_items_total",
			Help: "Total number of item occurrences ingested",
		},
		[]string{"source"},
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "copurchase_ingest_duration_seconds",
			Help:    "Duration of a full ingestion pass in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"source"},
	)

	r.IngestErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "copurchase_ingest_errors_total",
			Help: "Total number of ingestion failures",
		},
		[]string{"source"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphItemsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "copurchase_graph_items_total",
			Help: "Distinct items in the co-purchase graph",
		},
	)

	r.GraphPairsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "copurchase_graph_pairs_total",
			Help: "Distinct co-purchase pairs in the graph",
		},
	)

	r.GraphTransactionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "copurchase_graph_transactions_total",
			Help: "Transactions folded into the graph since startup",
		},
	)
}
