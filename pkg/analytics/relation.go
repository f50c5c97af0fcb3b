package analytics

import (
	"github.com/basketlab/copurchase/pkg/graph"
)

// Relation returns the recorded co-purchase count between a and b. 0 means
// "no relationship" — either item may be entirely unknown to the graph; that
// is an expected answer, not a failure.
func Relation(s *graph.Store, a, b string) int {
	return s.Weight(a, b)
}
