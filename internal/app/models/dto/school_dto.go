package dto

// SchoolFilterRequest carries the filter criteria accepted by both the GET
// (query string) and POST (JSON body) forms of the filter endpoint.
type SchoolFilterRequest struct {
	State             string   `form:"state" json:"state"`
	CostMin           *float64 `form:"cost_min" json:"cost_min"`
	CostMax           *float64 `form:"cost_max" json:"cost_max"`
	EarningsMin       *float64 `form:"earnings_min" json:"earnings_min"`
	AdmissionRateMax  *float64 `form:"admission_rate_max" json:"admission_rate_max"`
	CompletionRateMin *float64 `form:"completion_rate_min" json:"completion_rate_min"`
	Ownership         *int     `form:"ownership" json:"ownership"`
	DegreeLevel       *int     `form:"degree_level" json:"degree_level"`
	SizeMin           *int     `form:"size_min" json:"size_min"`
	SizeMax           *int     `form:"size_max" json:"size_max"`
	Major             string   `form:"major" json:"major"`
	MajorThreshold    *float64 `form:"major_threshold" json:"major_threshold"`
	SortBy            string   `form:"sort_by" json:"sort_by"`
	SortOrder         string   `form:"sort_order" json:"sort_order"`
	Page              int      `form:"page" json:"page"`
	Limit             int      `form:"limit" json:"limit"`
}

// SchoolSummary is the normalized per-school row returned by list
// endpoints. The bson tags let aggregation projections decode straight
// into it.
type SchoolSummary struct {
	SchoolID       int      `bson:"school_id" json:"school_id"`
	Name           string   `bson:"name" json:"name"`
	City           string   `bson:"city" json:"city"`
	State          string   `bson:"state" json:"state"`
	Ownership      *int     `bson:"ownership" json:"ownership"`
	OwnershipLabel string   `bson:"-" json:"ownership_label,omitempty"`
	DegreeLevel    *int     `bson:"degree_level" json:"degree_level"`
	Size           *int     `bson:"size" json:"size"`
	Cost           *float64 `bson:"cost" json:"cost"`
	Earnings10yr   *float64 `bson:"earnings_10yr" json:"earnings_10yr"`
	AdmissionRate  *float64 `bson:"admission_rate" json:"admission_rate"`
	CompletionRate *float64 `bson:"completion_rate" json:"completion_rate"`
}

// SchoolListResponse is the paginated envelope for filter results.
type SchoolListResponse struct {
	Results []*SchoolSummary `json:"results"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// SearchResponse wraps text-search hits.
type SearchResponse struct {
	Results []*SchoolSummary `json:"results"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Query   string           `json:"query"`
}

// CompareRequest is the POST body for school comparison.
type CompareRequest struct {
	IDs  []int `json:"ids" binding:"required"`
	Year *int  `json:"year"`
}

// SchoolDetail is the merged single-school view: core identity plus the
// satellite-year fields flattened into one namespace.
type SchoolDetail struct {
	SchoolID    int                    `json:"school_id"`
	Name        string                 `json:"name"`
	City        string                 `json:"city"`
	State       string                 `json:"state"`
	Zip         string                 `json:"zip,omitempty"`
	SchoolURL   string                 `json:"school_url,omitempty"`
	Ownership   *int                   `json:"ownership"`
	DegreeLevel *int                   `json:"degree_level"`
	Year        int                    `json:"year"`
	Outcomes    map[string]interface{} `json:"outcomes"`
	Admissions  map[string]interface{} `json:"admissions,omitempty"`
	Academics   map[string]interface{} `json:"academics,omitempty"`
	History     []*YearOutcomes        `json:"history,omitempty"`
}

// YearOutcomes is one year of the outcome history attached to a detail view.
type YearOutcomes struct {
	Year           int      `json:"year"`
	Cost           *float64 `json:"cost"`
	Earnings10yr   *float64 `json:"earnings_10yr"`
	CompletionRate *float64 `json:"completion_rate"`
	MedianDebt     *float64 `json:"median_debt"`
}

// CompareResponse lists merged detail rows for each requested school.
type CompareResponse struct {
	Results []*SchoolDetail `json:"results"`
	Year    int             `json:"year"`
}

// StateCount is one row of the distinct-states listing.
type StateCount struct {
	State string `bson:"_id" json:"state"`
	Count int64  `bson:"count" json:"count"`
}

// StatesResponse lists every state present in the dataset with school counts.
type StatesResponse struct {
	States []*StateCount `json:"states"`
	Total  int           `json:"total"`
}
