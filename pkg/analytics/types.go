// Package analytics answers read-only queries over the co-purchase
// aggregate. No function here mutates the store, so any number of them may
// run concurrently with each other.
//
// All rankings are deterministic: descending count first, then ascending
// lexicographic item order. The underlying counts carry no ordering of their
// own, and insertion-order tie-breaking would make results irreproducible.
package analytics

import (
	"sort"
)

// Defaults for result sizes, matching the interactive front end's prompts.
const (
	DefaultTopN            = 5 // TopCoPurchase
	DefaultTopPairs        = 3 // TopPairs
	DefaultRecommendations = 5 // Recommend
)

// ItemCount is one ranked entry: an item and its count or accumulated score.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// sortItemCounts orders entries by descending count, ascending item.
func sortItemCounts(entries []ItemCount) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Item < entries[j].Item
	})
}
