package visualization

import (
	"reflect"
	"testing"

	"github.com/basketlab/copurchase/pkg/graph"
)

func setupProjectionStore(t *testing.T) *graph.Store {
	t.Helper()
	s := graph.New()
	s.AddTransaction([]string{"milk", "yogurt", "soda"})
	s.AddTransaction([]string{"milk", "yogurt"})
	s.AddTransaction([]string{"milk", "bread"})
	s.AddTransaction([]string{"bread"})
	return s
}

func TestProject_TopNRestriction(t *testing.T) {
	s := setupProjectionStore(t)

	// Frequencies: milk 3, yogurt 2, bread 2, soda 1.
	p := Project(s, 2)

	wantNodes := []Node{
		{Item: "milk", Frequency: 3},
		{Item: "bread", Frequency: 2}, // tie with yogurt, lexicographic
	}
	if !reflect.DeepEqual(p.Nodes, wantNodes) {
		t.Errorf("Nodes = %v, want %v", p.Nodes, wantNodes)
	}

	wantEdges := []Edge{{A: "bread", B: "milk", Weight: 1}}
	if !reflect.DeepEqual(p.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", p.Edges, wantEdges)
	}
}

// Edges with only one endpoint in the top set must be dropped.
func TestProject_EdgeClosure(t *testing.T) {
	s := setupProjectionStore(t)

	p := Project(s, 3) // milk, bread, yogurt; soda excluded
	inSet := make(map[string]bool)
	for _, n := range p.Nodes {
		inSet[n.Item] = true
	}
	for _, e := range p.Edges {
		if !inSet[e.A] || !inSet[e.B] {
			t.Errorf("edge (%s, %s) has an endpoint outside the projection", e.A, e.B)
		}
	}
}

func TestProject_EmptyStore(t *testing.T) {
	p := Project(graph.New(), 5)
	if len(p.Nodes) != 0 || len(p.Edges) != 0 {
		t.Errorf("Project on empty store = %+v, want empty", p)
	}
}

func TestProject_Deterministic(t *testing.T) {
	s := setupProjectionStore(t)

	first := Project(s, 4)
	second := Project(s, 4)
	if !reflect.DeepEqual(first, second) {
		t.Error("Project is not deterministic")
	}
}
