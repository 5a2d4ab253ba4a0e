package dto

// StateAggregate is one grouped row of per-state metrics.
type StateAggregate struct {
	State             string   `bson:"_id" json:"state"`
	SchoolCount       int64    `bson:"school_count" json:"school_count"`
	AvgCost           *float64 `bson:"avg_cost" json:"avg_cost"`
	AvgEarnings       *float64 `bson:"avg_earnings" json:"avg_earnings"`
	AvgCompletionRate *float64 `bson:"avg_completion_rate" json:"avg_completion_rate"`
	MinCost           *float64 `bson:"min_cost" json:"min_cost"`
	MaxCost           *float64 `bson:"max_cost" json:"max_cost"`
	MinEarnings       *float64 `bson:"min_earnings" json:"min_earnings"`
	MaxEarnings       *float64 `bson:"max_earnings" json:"max_earnings"`
}

// StateAggregationResponse wraps grouped state metrics.
type StateAggregationResponse struct {
	Results []*StateAggregate `json:"results"`
	Total   int               `json:"total"`
	Year    int               `json:"year"`
}

// ROIEntry is one school ranked by return on investment.
type ROIEntry struct {
	SchoolID     int      `bson:"school_id" json:"school_id"`
	Name         string   `bson:"name" json:"name"`
	State        string   `bson:"state" json:"state"`
	Ownership    *int     `bson:"ownership" json:"ownership"`
	Cost         *float64 `bson:"cost" json:"cost"`
	Earnings10yr *float64 `bson:"earnings_10yr" json:"earnings_10yr"`
	ROI          *float64 `bson:"roi" json:"roi"`
	PaybackYears *float64 `bson:"payback_years" json:"payback_years"`
}

// ROIResponse is the ROI ranking.
type ROIResponse struct {
	Results []*ROIEntry `json:"results"`
	Total   int         `json:"total"`
	Year    int         `json:"year"`
}

// DistributionBucket is one labeled histogram bucket.
type DistributionBucket struct {
	Label string   `json:"label"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int64    `json:"count"`
}

// DistributionResponse is a bucketed histogram over one metric.
type DistributionResponse struct {
	Metric  string                `json:"metric"`
	Buckets []*DistributionBucket `json:"buckets"`
	Total   int64                 `json:"total"`
	Year    int                   `json:"year"`
}

// ScatterPoint is one school on the cost-vs-earnings plane.
type ScatterPoint struct {
	SchoolID     int     `bson:"school_id" json:"school_id"`
	Name         string  `bson:"name" json:"name"`
	State        string  `bson:"state" json:"state"`
	Ownership    *int    `bson:"ownership" json:"ownership"`
	Cost         float64 `bson:"cost" json:"cost"`
	Earnings10yr float64 `bson:"earnings_10yr" json:"earnings_10yr"`
}

// ScatterResponse is the cost-vs-earnings scatter payload.
type ScatterResponse struct {
	Results []*ScatterPoint `json:"results"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Year    int             `json:"year"`
}

// CompletionGroup is one grouped completion-rate row; the group id is a
// state code, an ownership code, or a degree level depending on group_by.
type CompletionGroup struct {
	Group             interface{} `bson:"_id" json:"group"`
	Label             string      `bson:"-" json:"label,omitempty"`
	SchoolCount       int64       `bson:"school_count" json:"school_count"`
	AvgCompletionRate *float64    `bson:"avg_completion_rate" json:"avg_completion_rate"`
	MinCompletionRate *float64    `bson:"min_completion_rate" json:"min_completion_rate"`
	MaxCompletionRate *float64    `bson:"max_completion_rate" json:"max_completion_rate"`
}

// CompletionRatesResponse wraps grouped completion metrics.
type CompletionRatesResponse struct {
	GroupBy string             `json:"group_by"`
	Results []*CompletionGroup `json:"results"`
	Total   int                `json:"total"`
	Year    int                `json:"year"`
}

// DatasetSummary is the dataset-wide rollup.
type DatasetSummary struct {
	Year              int      `json:"year"`
	SchoolCount       int64    `json:"school_count"`
	StateCount        int      `json:"state_count"`
	AvgCost           *float64 `json:"avg_cost"`
	AvgEarnings       *float64 `json:"avg_earnings"`
	AvgCompletionRate *float64 `json:"avg_completion_rate"`
	AvgAdmissionRate  *float64 `json:"avg_admission_rate"`
}
