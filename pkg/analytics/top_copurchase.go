package analytics

import (
	"github.com/basketlab/copurchase/pkg/graph"
)

// TopCoPurchase returns the n items most often bought together with target,
// ordered by descending co-purchase count then ascending item name.
//
// An unknown target, or one with no recorded co-purchases, yields an empty
// slice — distinguishable from a zero-count relationship, which never
// appears at all. n <= 0 falls back to DefaultTopN; fewer than n neighbors
// returns all of them.
func TopCoPurchase(s *graph.Store, target string, n int) []ItemCount {
	if n <= 0 {
		n = DefaultTopN
	}

	neighbors := s.Neighbors(target)
	ranked := make([]ItemCount, 0, len(neighbors))
	for item, count := range neighbors {
		ranked = append(ranked, ItemCount{Item: item, Count: count})
	}
	sortItemCounts(ranked)

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
