package entry

// Filter defines parameters for searching and paginating dictionary entries.
type Filter struct {
	// Search performs ILIKE '%...%' against both normalized text columns.
	// nil or empty string means no text filter.
	Search *string

	// SourceSlug restricts entries to one import source.
	SourceSlug *string

	// SortBy determines the sort column: "banglish", "created_at".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of entries to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of entries to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByBanglish  = "banglish"
	sortByCreatedAt = "created_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByBanglish, sortByCreatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
