package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/basketlab/copurchase/pkg/graph"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.IngestTransactionsTotal == nil {
		t.Error("IngestTransactionsTotal not initialized")
	}
	if r.QueriesTotal == nil {
		t.Error("QueriesTotal not initialized")
	}
	if r.GraphItemsTotal == nil {
		t.Error("GraphItemsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordQuery("top_copurchase", 2*time.Millisecond)
	r.RecordQuery("top_copurchase", 3*time.Millisecond)
	r.RecordQuery("recommend", time.Millisecond)

	counter, err := r.QueriesTotal.GetMetricWithLabelValues("top_copurchase")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Errorf("top_copurchase counter = %v, want 2", got)
	}
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest("csv", 100, 340, 50*time.Millisecond)

	counter, err := r.IngestTransactionsTotal.GetMetricWithLabelValues("csv")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 100 {
		t.Errorf("csv transaction counter = %v, want 100", got)
	}
}

func TestUpdateGraphStats(t *testing.T) {
	r := NewRegistry()

	r.UpdateGraphStats(graph.Stats{ItemCount: 12, PairCount: 30, TransactionCount: 7})

	var metric dto.Metric
	if err := r.GraphPairsTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 30 {
		t.Errorf("GraphPairsTotal = %v, want 30", got)
	}
}
