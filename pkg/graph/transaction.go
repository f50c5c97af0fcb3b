package graph

// AddTransaction folds one purchase event into the aggregate. Counts only
// ever increase; there is no way to remove a transaction's effect.
//
// The caller must supply each item at most once — deduplication belongs to
// the record-parsing collaborator, and the store does not repeat it. A
// duplicated item would inflate pair counts.
//
// A transaction with fewer than two items contributes to frequency only and
// records no relationships. An empty slice is a counted no-op.
func (s *Store) AddTransaction(items []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactionCount++

	for _, item := range items {
		s.frequency[item]++
	}

	if len(items) < 2 {
		return
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			s.incrementPair(items[i], items[j])
		}
	}
}

// incrementPair bumps both directed entries for the unordered pair {a, b}.
// Caller holds the write lock, so the two halves are never visible apart.
func (s *Store) incrementPair(a, b string) {
	if s.coPurchase[a] == nil {
		s.coPurchase[a] = make(map[string]int)
	}
	if s.coPurchase[b] == nil {
		s.coPurchase[b] = make(map[string]int)
	}

	if _, seen := s.coPurchase[a][b]; !seen {
		s.pairCount++
	}

	s.coPurchase[a][b]++
	s.coPurchase[b][a]++
}
