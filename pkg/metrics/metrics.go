package metrics

import (
	"time"

	"github.com/basketlab/copurchase/pkg/graph"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordQuery records one analytic query execution
func (r *Registry) RecordQuery(query string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(query).Inc()
	r.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// RecordIngest records a completed ingestion pass from one source
func (r *Registry) RecordIngest(source string, transactions, items int, duration time.Duration) {
	r.IngestTransactionsTotal.WithLabelValues(source).Add(float64(transactions))
	r.IngestItemsTotal.WithLabelValues(source).Add(float64(items))
	r.IngestDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordIngestError records a failed ingestion attempt
func (r *Registry) RecordIngestError(source string) {
	r.IngestErrorsTotal.WithLabelValues(source).Inc()
}

// UpdateGraphStats refreshes the graph size gauges from store statistics
func (r *Registry) UpdateGraphStats(stats graph.Stats) {
	r.GraphItemsTotal.Set(float64(stats.ItemCount))
	r.GraphPairsTotal.Set(float64(stats.PairCount))
	r.GraphTransactionsTotal.Set(float64(stats.TransactionCount))
}
