package analytics

import (
	"sort"

	"github.com/basketlab/copurchase/pkg/graph"
)

// TopPairs returns the k most popular item combinations across the whole
// graph. Each unordered pair is counted once; the store's canonical (lesser,
// greater) enumeration already removes the symmetric duplicate. Ordering is
// descending count, then ascending canonical pair. k <= 0 falls back to
// DefaultTopPairs; fewer than k recorded pairs returns all of them.
func TopPairs(s *graph.Store, k int) []graph.PairWeight {
	if k <= 0 {
		k = DefaultTopPairs
	}

	pairs := s.Pairs()
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	if k < len(pairs) {
		pairs = pairs[:k]
	}
	return pairs
}
