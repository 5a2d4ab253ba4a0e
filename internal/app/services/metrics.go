package services

// Investment horizon used by the value metrics: median earnings are
// projected over ten working years against four years of net price.
const (
	earningsHorizonYears = 10
	programLengthYears   = 4
)

// ComputeROI returns the return-on-investment ratio and the payback
// period in years for one school. Both are nil unless cost and earnings
// are present and strictly positive; a zero or negative cost makes the
// ratio meaningless rather than infinite.
func ComputeROI(cost, earnings *float64) (roi, payback *float64) {
	if cost == nil || earnings == nil || *cost <= 0 || *earnings <= 0 {
		return nil, nil
	}
	totalCost := *cost * programLengthYears
	totalEarnings := *earnings * earningsHorizonYears
	r := (totalEarnings - totalCost) / totalCost
	p := totalCost / *earnings
	return &r, &p
}
