package models

// SchoolFilter is the flat criteria set for the institution list query.
// Nil fields impose no constraint: an unset criterion must yield the same
// result set as no filter on that dimension.
type SchoolFilter struct {
	State             *string
	CostMin           *float64
	CostMax           *float64
	EarningsMin       *float64
	AdmissionRateMax  *float64
	CompletionRateMin *float64
	Ownership         *int
	DegreeLevel       *int
	SizeMin           *int
	SizeMax           *int
	// SchoolIDs is populated by the major pre-filter; when non-nil it
	// becomes a school_id allow-list ANDed with the other criteria.
	SchoolIDs []int
	SortBy    string
	SortOrder string
}

// SortByDefault and SortOrderDefault are the canonical list ordering:
// largest institutions first.
const (
	SortByDefault    = "size"
	SortOrderDefault = "desc"
)
