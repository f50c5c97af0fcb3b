package graph

import (
	"sort"
)

// New creates an empty co-purchase store.
func New() *Store {
	return &Store{
		coPurchase: make(map[string]map[string]int),
		frequency:  make(map[string]int),
	}
}

// Frequency returns the number of transactions the item appeared in.
// Unknown items report 0.
func (s *Store) Frequency(item string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frequency[item]
}

// Weight returns the co-purchase count between a and b, or 0 when no
// relationship is recorded. Absence is a valid answer, never an error.
func (s *Store) Weight(a, b string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if neighbors, ok := s.coPurchase[a]; ok {
		return neighbors[b]
	}
	return 0
}

// Neighbors returns a copy of the item's adjacency row. Items with no
// recorded co-purchases (including unknown items) get an empty, non-nil map.
// The copy keeps callers from observing later mutations.
func (s *Store) Neighbors(item string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.coPurchase[item]
	out := make(map[string]int, len(row))
	for neighbor, count := range row {
		out[neighbor] = count
	}
	return out
}

// Items returns every item seen in any transaction, sorted lexicographically.
func (s *Store) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, len(s.frequency))
	for item := range s.frequency {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// TopByFrequency returns the n most frequently purchased items, ordered by
// descending frequency then ascending item name. Fewer than n known items
// returns all of them. This ranking feeds the visualization projection.
func (s *Store) TopByFrequency(n int) []ItemFrequency {
	s.mu.RLock()
	ranked := make([]ItemFrequency, 0, len(s.frequency))
	for item, freq := range s.frequency {
		ranked = append(ranked, ItemFrequency{Item: item, Frequency: freq})
	}
	s.mu.RUnlock()

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Frequency != ranked[j].Frequency {
			return ranked[i].Frequency > ranked[j].Frequency
		}
		return ranked[i].Item < ranked[j].Item
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Stats returns aggregate counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		ItemCount:        len(s.frequency),
		PairCount:        s.pairCount,
		TransactionCount: s.transactionCount,
	}
}
