package taskfilter

// SearchMode selects the predicate applied before sorting.
type SearchMode int

const (
	// SearchNone keeps every task. Unrecognized wire codes decode to it.
	SearchNone SearchMode = iota
	// SearchTimeRange keeps tasks due strictly between two dates.
	SearchTimeRange
	// SearchCreator keeps tasks whose creator name contains a substring.
	SearchCreator
)

// ParseSearchMode maps the wire code of a search mode to its variant.
func ParseSearchMode(code int) SearchMode {
	switch code {
	case 1:
		return SearchTimeRange
	case 2:
		return SearchCreator
	default:
		return SearchNone
	}
}

func (m SearchMode) String() string {
	switch m {
	case SearchTimeRange:
		return "time-range"
	case SearchCreator:
		return "creator"
	default:
		return "none"
	}
}

// SortMode selects a completion filter plus an ordering key.
type SortMode int

const (
	// SortNone leaves the set unfiltered and in store order.
	SortNone SortMode = iota
	// SortByCreateTime: incomplete tasks, oldest first.
	SortByCreateTime
	// SortByDueDate: incomplete tasks, earliest due first, undated last.
	SortByDueDate
	// SortByCreatorDesc: incomplete tasks, creator name descending.
	SortByCreatorDesc
	// SortByID: incomplete tasks, id ascending.
	SortByID
	// SortByIDLegacy is a second wire code for SortByID; clients still send it.
	SortByIDLegacy
	// SortCompletedByID: complete tasks, id ascending.
	SortCompletedByID
)

// ParseSortMode maps the wire code of a sort mode to its variant.
func ParseSortMode(code int) SortMode {
	switch code {
	case 1:
		return SortByCreateTime
	case 2:
		return SortByDueDate
	case 3:
		return SortByCreatorDesc
	case 4:
		return SortByID
	case 5:
		return SortByIDLegacy
	case 6:
		return SortCompletedByID
	default:
		return SortNone
	}
}

func (m SortMode) String() string {
	switch m {
	case SortByCreateTime:
		return "create-time"
	case SortByDueDate:
		return "due-date"
	case SortByCreatorDesc:
		return "creator-desc"
	case SortByID:
		return "id"
	case SortByIDLegacy:
		return "id-legacy"
	case SortCompletedByID:
		return "completed-id"
	default:
		return "none"
	}
}
