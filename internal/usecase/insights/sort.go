package insights

import "sort"

// SortKey selects the value rows are ranked by
type SortKey string

const (
	SortByPercentage SortKey = "PERCENTAGE"
	SortByPrice      SortKey = "CURRENT_PRICE"
	SortByChange24h  SortKey = "CHANGE_PRICE_IN_24H"
	SortByChange7d   SortKey = "CHANGE_PRICE_IN_7D"
	SortByChange30d  SortKey = "CHANGE_PRICE_IN_30D"
)

// SortOrder selects the ranking direction
type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"
)

// SortRows orders rows in place by the given key and direction.
// The sort is stable: rows whose key values compare equal keep their input
// order, in both directions. Descending is the argument-swapped ascending
// comparator, never an independently written one, so tie handling cannot
// diverge between directions.
func SortRows(rows []Row, key SortKey, order SortOrder) {
	asc := lessFunc(key)
	less := asc
	if order == Descending {
		less = func(a, b Row) bool { return asc(b, a) }
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})
}

func lessFunc(key SortKey) func(a, b Row) bool {
	switch key {
	case SortByPrice:
		return func(a, b Row) bool { return a.Price.LessThan(b.Price) }
	case SortByChange24h:
		return func(a, b Row) bool { return a.Changes.Change24h < b.Changes.Change24h }
	case SortByChange7d:
		return func(a, b Row) bool { return a.Changes.Change7d < b.Changes.Change7d }
	case SortByChange30d:
		return func(a, b Row) bool { return a.Changes.Change30d < b.Changes.Change30d }
	default:
		return func(a, b Row) bool { return a.Percentage < b.Percentage }
	}
}
