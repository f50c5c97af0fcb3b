package graph

// PairWeight is one undirected edge of the aggregate, canonicalized so
// A < B lexicographically.
type PairWeight struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Pairs returns every distinct unordered pair exactly once. The symmetric
// storage holds each relationship twice; emitting only the a < b direction
// dedupes without an auxiliary set. Order is unspecified — callers that need
// determinism sort the result.
func (s *Store) Pairs() []PairWeight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]PairWeight, 0, s.pairCount)
	for a, neighbors := range s.coPurchase {
		for b, count := range neighbors {
			if a < b {
				pairs = append(pairs, PairWeight{A: a, B: b, Count: count})
			}
		}
	}
	return pairs
}
