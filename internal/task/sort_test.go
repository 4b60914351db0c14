package task

import (
	"math/rand"
	"reflect"
	"testing"
)

func sortFixture() []DerivedTask {
	mk := func(id string, revenue, timeTaken float64) DerivedTask {
		return Derive(Task{ID: id, Revenue: revenue, TimeTaken: timeTaken})
	}
	return []DerivedTask{
		mk("delta", 100, 10), // ROI 10
		mk("alpha", 200, 10), // ROI 20
		mk("echo", 50, 5),    // ROI 10, lower revenue
		mk("bravo", 100, 10), // ROI 10, ties with delta on everything but ID
		mk("charlie", 0, 1),  // ROI 0
	}
}

func TestSortDerivedRanking(t *testing.T) {
	derived := sortFixture()
	SortDerived(derived)

	want := []string{"alpha", "bravo", "delta", "echo", "charlie"}
	for i, id := range want {
		if derived[i].ID != id {
			t.Errorf("derived[%d].ID = %q, want %q", i, derived[i].ID, id)
		}
	}
}

func TestSortDerivedDeterministic(t *testing.T) {
	// Sorting the same multiset from any initial order must converge on
	// the same output order. Shuffle with a fixed seed for repeatability.
	rng := rand.New(rand.NewSource(1))
	var first []string
	for trial := 0; trial < 10; trial++ {
		derived := sortFixture()
		rng.Shuffle(len(derived), func(i, j int) {
			derived[i], derived[j] = derived[j], derived[i]
		})
		SortDerived(derived)

		ids := make([]string, len(derived))
		for i, d := range derived {
			ids[i] = d.ID
		}
		if first == nil {
			first = ids
			continue
		}
		if !reflect.DeepEqual(ids, first) {
			t.Fatalf("trial %d order %v differs from first %v", trial, ids, first)
		}
	}
}

func TestSortDerivedByKeys(t *testing.T) {
	derived := sortFixture()

	SortDerivedBy(derived, SortByRevenue)
	if derived[0].ID != "alpha" {
		t.Errorf("revenue sort first = %q, want alpha", derived[0].ID)
	}
	// Revenue ties (delta/bravo at 100) break by ID ascending.
	if derived[1].ID != "bravo" || derived[2].ID != "delta" {
		t.Errorf("revenue tie order = %q, %q, want bravo, delta", derived[1].ID, derived[2].ID)
	}

	SortDerivedBy(derived, SortByTime)
	if derived[0].TimeTaken != 10 {
		t.Errorf("time sort first TimeTaken = %v, want 10", derived[0].TimeTaken)
	}

	// Unknown keys behave like the default ROI ranking.
	unknown := sortFixture()
	def := sortFixture()
	SortDerivedBy(unknown, SortKey("bogus"))
	SortDerived(def)
	for i := range def {
		if unknown[i].ID != def[i].ID {
			t.Fatalf("unknown key order diverges at %d: %q vs %q", i, unknown[i].ID, def[i].ID)
		}
	}
}
