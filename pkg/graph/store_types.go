package graph

import (
	"sync"
)

// Store is the in-memory co-purchase aggregate. It tracks how many
// transactions each item appeared in and, for every unordered item pair, how
// many transactions contained both.
//
// Edges are held as two symmetric directed entries so neighbor lookup is O(1)
// from either endpoint. Symmetry is maintained by construction: every write
// updates both directions under the same lock acquisition.
type Store struct {
	// adjacency: item -> co-occurring item -> shared transaction count
	coPurchase map[string]map[string]int

	// frequency: item -> number of transactions containing it
	frequency map[string]int

	// Concurrency control. AddTransaction takes the write lock for the whole
	// pairwise update so readers never observe a half-applied transaction.
	mu sync.RWMutex

	// Statistics
	transactionCount uint64
	pairCount        uint64
}

// Stats reports aggregate-level counters.
type Stats struct {
	ItemCount        int    // distinct items seen in any transaction
	PairCount        uint64 // distinct unordered pairs with a recorded count
	TransactionCount uint64 // transactions ingested, including empty ones
}

// ItemFrequency pairs an item with its purchase frequency.
type ItemFrequency struct {
	Item      string `json:"item"`
	Frequency int    `json:"frequency"`
}
