package visualization

import (
	"sort"

	"github.com/basketlab/copurchase/pkg/graph"
)

// DefaultTopItems is how many high-frequency items a projection shows when
// the caller does not say otherwise.
const DefaultTopItems = 10

// Project builds the drawable subgraph of the topN most purchased items.
// Edges survive only when both endpoints are in the top set, so the picture
// stays readable on dense data. Node order follows the store's frequency
// ranking; edges are sorted by canonical pair so the same graph always
// projects identically.
func Project(s *graph.Store, topN int) *Projection {
	if topN <= 0 {
		topN = DefaultTopItems
	}

	ranked := s.TopByFrequency(topN)

	projected := make(map[string]bool, len(ranked))
	nodes := make([]Node, 0, len(ranked))
	for _, entry := range ranked {
		projected[entry.Item] = true
		nodes = append(nodes, Node{Item: entry.Item, Frequency: entry.Frequency})
	}

	edges := make([]Edge, 0)
	for _, pair := range s.Pairs() {
		if projected[pair.A] && projected[pair.B] {
			edges = append(edges, Edge{A: pair.A, B: pair.B, Weight: pair.Count})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return &Projection{Nodes: nodes, Edges: edges}
}
