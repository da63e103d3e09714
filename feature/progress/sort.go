package progress

import "sort"

// SortField names a sortable column of the item summary. An explicit enum
// with a switch replaces the dynamic property indexing the view layer would
// otherwise do.
type SortField string

const (
	SortByItemName      SortField = "itemName"
	SortByRequiredNow   SortField = "requiredNow"
	SortByWillNeed      SortField = "willNeed"
	SortByTotalRequired SortField = "totalRequired"
	SortByOwned         SortField = "owned"
	SortByRemaining     SortField = "remaining"
)

// ParseSortField maps a request parameter onto a SortField, defaulting to
// remaining (the engine's natural order).
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByItemName, SortByRequiredNow, SortByWillNeed, SortByTotalRequired, SortByOwned, SortByRemaining:
		return SortField(s)
	default:
		return SortByRemaining
	}
}

// SortSummaries orders the summaries by the given field. Ties always fall
// back to item name so the output stays deterministic.
func SortSummaries(summaries []ItemSummary, field SortField, descending bool) {
	value := func(s ItemSummary) int {
		switch field {
		case SortByRequiredNow:
			return s.RequiredNow
		case SortByWillNeed:
			return s.WillNeed
		case SortByTotalRequired:
			return s.TotalRequired
		case SortByOwned:
			return s.Owned
		default:
			return s.Remaining
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if field == SortByItemName {
			if descending {
				return summaries[i].ItemName > summaries[j].ItemName
			}
			return summaries[i].ItemName < summaries[j].ItemName
		}

		vi, vj := value(summaries[i]), value(summaries[j])
		if vi != vj {
			if descending {
				return vi > vj
			}
			return vi < vj
		}
		return summaries[i].ItemName < summaries[j].ItemName
	})
}
