package analytics

import (
	"github.com/basketlab/copurchase/pkg/graph"
)

// Recommend scores candidate items against a basket of inputs: every
// neighbor of every input accumulates that neighbor's co-purchase count, so
// an item bought with two different inputs collects both contributions.
// Inputs themselves are never candidates, even when they co-occur with each
// other.
//
// Results are ordered by descending accumulated score then ascending item
// name and truncated to n (DefaultRecommendations when n <= 0). An empty
// basket yields an empty result.
func Recommend(s *graph.Store, inputs []string, n int) []ItemCount {
	if n <= 0 {
		n = DefaultRecommendations
	}

	inputSet := make(map[string]bool, len(inputs))
	for _, item := range inputs {
		inputSet[item] = true
	}

	scores := make(map[string]int)
	for _, item := range inputs {
		for neighbor, count := range s.Neighbors(item) {
			if inputSet[neighbor] {
				continue
			}
			scores[neighbor] += count
		}
	}

	ranked := make([]ItemCount, 0, len(scores))
	for item, score := range scores {
		ranked = append(ranked, ItemCount{Item: item, Count: score})
	}
	sortItemCounts(ranked)

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
