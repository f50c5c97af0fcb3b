package analytics

import (
	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
)

// FilterByCategory restricts the graph to items of one category: each
// returned item keeps only neighbors in the same category, and items left
// with no in-category neighbor are omitted entirely.
//
// Both an unknown category and a category whose items share no transactions
// yield an empty map; callers that need to tell them apart ask the index via
// Known before querying.
func FilterByCategory(s *graph.Store, idx *category.Index, cat string) map[string]map[string]int {
	members := idx.Items(cat)
	filtered := make(map[string]map[string]int)
	if len(members) == 0 {
		return filtered
	}

	memberSet := make(map[string]bool, len(members))
	for _, item := range members {
		memberSet[item] = true
	}

	for _, item := range members {
		neighbors := s.Neighbors(item)
		kept := make(map[string]int)
		for neighbor, count := range neighbors {
			if memberSet[neighbor] {
				kept[neighbor] = count
			}
		}
		if len(kept) > 0 {
			filtered[item] = kept
		}
	}
	return filtered
}
