package analytics

import (
	"reflect"
	"testing"

	"github.com/basketlab/copurchase/pkg/graph"
)

func setupStore(t *testing.T, txs ...[]string) *graph.Store {
	t.Helper()
	s := graph.New()
	for _, tx := range txs {
		s.AddTransaction(tx)
	}
	return s
}

func TestTopCoPurchase_UnknownItem(t *testing.T) {
	s := setupStore(t, []string{"milk", "yogurt"})

	if got := TopCoPurchase(s, "caviar", 5); len(got) != 0 {
		t.Errorf("TopCoPurchase(caviar) = %v, want empty", got)
	}
}

func TestTopCoPurchase_NoNeighbors(t *testing.T) {
	s := setupStore(t, []string{"bread"})

	if got := TopCoPurchase(s, "bread", 5); len(got) != 0 {
		t.Errorf("TopCoPurchase(bread) = %v, want empty", got)
	}
}

func TestTopCoPurchase_Ranking(t *testing.T) {
	s := setupStore(t,
		[]string{"milk", "yogurt"},
		[]string{"milk", "yogurt"},
		[]string{"milk", "soda"},
		[]string{"milk", "bread"},
	)

	got := TopCoPurchase(s, "milk", 2)
	want := []ItemCount{
		{Item: "yogurt", Count: 2},
		{Item: "bread", Count: 1}, // tie with soda broken lexicographically
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCoPurchase(milk, 2) = %v, want %v", got, want)
	}
}

func TestTopCoPurchase_FewerThanN(t *testing.T) {
	s := setupStore(t, []string{"milk", "yogurt"})

	if got := TopCoPurchase(s, "milk", 10); len(got) != 1 {
		t.Errorf("TopCoPurchase(milk, 10) returned %d entries, want 1", len(got))
	}
}

func TestTopCoPurchase_DefaultN(t *testing.T) {
	s := setupStore(t,
		[]string{"milk", "a", "b", "c", "d", "e", "f"},
	)

	if got := TopCoPurchase(s, "milk", 0); len(got) != DefaultTopN {
		t.Errorf("TopCoPurchase(milk, 0) returned %d entries, want %d", len(got), DefaultTopN)
	}
}
