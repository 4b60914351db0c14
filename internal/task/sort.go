package task

import (
	"cmp"
	"slices"
)

// SortKey selects the primary column for display ordering.
type SortKey string

const (
	// SortByROI orders by ROI descending. This is the default ranking.
	SortByROI SortKey = "roi"

	// SortByRevenue orders by revenue descending.
	SortByRevenue SortKey = "revenue"

	// SortByTime orders by hours invested descending.
	SortByTime SortKey = "time"

	// SortByCreated orders by creation time ascending.
	SortByCreated SortKey = "created"
)

// SortKeys lists the supported sort keys in cycle order for the UI.
var SortKeys = []SortKey{SortByROI, SortByRevenue, SortByTime, SortByCreated}

// SortDerived orders derived tasks in place by the default display ranking:
// ROI descending, then revenue descending, then ID ascending. The final ID
// tie-break makes the ordering deterministic for any input multiset; two
// sorts of the same records always agree.
func SortDerived(derived []DerivedTask) {
	SortDerivedBy(derived, SortByROI)
}

// SortDerivedBy orders derived tasks in place by the given key. Every key
// falls through to revenue descending and then ID ascending, so the total
// order is deterministic regardless of the primary column. Unknown keys
// sort like [SortByROI].
func SortDerivedBy(derived []DerivedTask, key SortKey) {
	slices.SortStableFunc(derived, func(a, b DerivedTask) int {
		if c := comparePrimary(a, b, key); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Revenue, a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func comparePrimary(a, b DerivedTask, key SortKey) int {
	switch key {
	case SortByRevenue:
		return cmp.Compare(b.Revenue, a.Revenue)
	case SortByTime:
		return cmp.Compare(b.TimeTaken, a.TimeTaken)
	case SortByCreated:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return cmp.Compare(b.ROI, a.ROI)
	}
}
