package analytics

import (
	"reflect"
	"testing"
)

func TestRecommend_AccumulatesAcrossInputs(t *testing.T) {
	s := setupStore(t,
		[]string{"milk", "soda"},
		[]string{"yogurt", "soda"},
		[]string{"milk", "bread"},
	)

	got := Recommend(s, []string{"milk", "yogurt"}, 5)
	want := []ItemCount{
		{Item: "soda", Count: 2}, // 1 from milk + 1 from yogurt
		{Item: "bread", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend = %v, want %v", got, want)
	}
}

func TestRecommend_ExcludesInputs(t *testing.T) {
	s := setupStore(t,
		[]string{"milk", "yogurt"},
		[]string{"milk", "yogurt", "soda"},
	)

	for _, rec := range Recommend(s, []string{"milk", "yogurt"}, 5) {
		if rec.Item == "milk" || rec.Item == "yogurt" {
			t.Errorf("input item %q appeared in recommendations", rec.Item)
		}
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	s := setupStore(t, []string{"milk", "yogurt"})

	if got := Recommend(s, nil, 5); len(got) != 0 {
		t.Errorf("Recommend(nil) = %v, want empty", got)
	}
}

func TestRecommend_UnknownInputs(t *testing.T) {
	s := setupStore(t, []string{"milk", "yogurt"})

	if got := Recommend(s, []string{"caviar"}, 5); len(got) != 0 {
		t.Errorf("Recommend(caviar) = %v, want empty", got)
	}
}

func TestRecommend_Truncation(t *testing.T) {
	s := setupStore(t,
		[]string{"milk", "a", "b", "c"},
	)

	if got := Recommend(s, []string{"milk"}, 2); len(got) != 2 {
		t.Errorf("Recommend n=2 returned %d entries", len(got))
	}
}
