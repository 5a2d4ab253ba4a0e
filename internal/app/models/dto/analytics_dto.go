package dto

// StateSummary is the headline block of the per-state analytics bundle.
// Median fields decode from $percentile output, which is an array.
type StateSummary struct {
	SchoolCount       int64     `bson:"school_count" json:"school_count"`
	AvgCost           *float64  `bson:"avg_cost" json:"avg_cost"`
	MedianCostArr     []float64 `bson:"median_cost" json:"-"`
	MedianCost        *float64  `bson:"-" json:"median_cost"`
	AvgEarnings       *float64  `bson:"avg_earnings" json:"avg_earnings"`
	MedianEarningsArr []float64 `bson:"median_earnings" json:"-"`
	MedianEarnings    *float64  `bson:"-" json:"median_earnings"`
	AvgCompletionRate *float64  `bson:"avg_completion_rate" json:"avg_completion_rate"`
	AvgAdmissionRate  *float64  `bson:"avg_admission_rate" json:"avg_admission_rate"`
	TotalEnrollment   *int64    `bson:"total_enrollment" json:"total_enrollment"`
}

// OwnershipBreakdown is one ownership sector within a state.
type OwnershipBreakdown struct {
	Ownership   int      `bson:"_id" json:"ownership"`
	Label       string   `bson:"-" json:"label"`
	SchoolCount int64    `bson:"school_count" json:"school_count"`
	AvgCost     *float64 `bson:"avg_cost" json:"avg_cost"`
	AvgEarnings *float64 `bson:"avg_earnings" json:"avg_earnings"`
}

// RankedSchool is one entry of a top-N list inside the state bundle.
type RankedSchool struct {
	SchoolID     int      `bson:"school_id" json:"school_id"`
	Name         string   `bson:"name" json:"name"`
	City         string   `bson:"city" json:"city"`
	Cost         *float64 `bson:"cost" json:"cost"`
	Earnings10yr *float64 `bson:"earnings_10yr" json:"earnings_10yr"`
	Value        *float64 `bson:"value" json:"value,omitempty"`
	Completion   *float64 `bson:"completion_rate" json:"completion_rate,omitempty"`
}

// StateAnalyticsResponse is the $facet bundle for one state.
type StateAnalyticsResponse struct {
	State                string                `json:"state"`
	Year                 int                   `json:"year"`
	Summary              *StateSummary         `json:"summary"`
	ByOwnership          []*OwnershipBreakdown `json:"by_ownership"`
	TopByEarnings        []*RankedSchool       `json:"top_by_earnings"`
	TopByValue           []*RankedSchool       `json:"top_by_value"`
	MostAffordable       []*RankedSchool       `json:"most_affordable"`
	TopByCompletion      []*RankedSchool       `json:"top_by_completion"`
	CostDistribution     []*DistributionBucket `json:"cost_distribution"`
	EarningsDistribution []*DistributionBucket `json:"earnings_distribution"`
	AllSchools           []*SchoolSummary      `json:"all_schools"`
}

// StateComparisonRow is one state's rollup in the cross-state comparison.
type StateComparisonRow struct {
	State             string   `bson:"_id" json:"state"`
	SchoolCount       int64    `bson:"school_count" json:"school_count"`
	PublicCount       int64    `bson:"public_count" json:"public_count"`
	PrivateCount      int64    `bson:"private_count" json:"private_count"`
	ForProfitCount    int64    `bson:"for_profit_count" json:"for_profit_count"`
	AvgCost           *float64 `bson:"avg_cost" json:"avg_cost"`
	AvgEarnings       *float64 `bson:"avg_earnings" json:"avg_earnings"`
	AvgCompletionRate *float64 `bson:"avg_completion_rate" json:"avg_completion_rate"`
	TotalEnrollment   *int64   `bson:"total_enrollment" json:"total_enrollment"`
}

// StateComparisonResponse lists every state's rollup.
type StateComparisonResponse struct {
	Year    int                   `json:"year"`
	Results []*StateComparisonRow `json:"results"`
	Total   int                   `json:"total"`
}

// CompletionByRace breaks the 150%-time completion rate out per race.
type CompletionByRace struct {
	White    *float64 `json:"white"`
	Black    *float64 `json:"black"`
	Hispanic *float64 `json:"hispanic"`
	Asian    *float64 `json:"asian"`
}

// Baseline carries one comparison scope's averages for school analytics.
type Baseline struct {
	AvgCost           *float64 `bson:"avg_cost" json:"avg_cost"`
	AvgEarnings       *float64 `bson:"avg_earnings" json:"avg_earnings"`
	AvgCompletionRate *float64 `bson:"avg_completion_rate" json:"avg_completion_rate"`
}

// SchoolAnalyticsResponse is the per-school analytics view.
type SchoolAnalyticsResponse struct {
	SchoolID         int               `json:"school_id"`
	Name             string            `json:"name"`
	State            string            `json:"state"`
	Year             int               `json:"year"`
	Cost             *float64          `json:"cost"`
	Earnings10yr     *float64          `json:"earnings_10yr"`
	CompletionRate   *float64          `json:"completion_rate"`
	AdmissionRate    *float64          `json:"admission_rate"`
	MedianDebt       *float64          `json:"median_debt"`
	ROI              *float64          `json:"roi"`
	PaybackYears     *float64          `json:"payback_years"`
	CompletionByRace *CompletionByRace `json:"completion_by_race"`
	StateBaseline    *Baseline         `json:"state_baseline"`
	NationalBaseline *Baseline         `json:"national_baseline"`
	Trend            []*YearOutcomes   `json:"trend"`
}

// YearsResponse lists the data years present in the outcome collection.
type YearsResponse struct {
	Years       []int `json:"years"`
	DefaultYear int   `json:"default_year"`
}
