package dto

// ProgramTrendPoint is one (year → earnings/debt) sample for a CIP code.
type ProgramTrendPoint struct {
	Year           int      `bson:"_id" json:"year"`
	SchoolCount    int64    `bson:"school_count" json:"school_count"`
	AvgEarnings1yr *float64 `bson:"avg_earnings_1yr" json:"avg_earnings_1yr"`
	AvgEarnings5yr *float64 `bson:"avg_earnings_5yr" json:"avg_earnings_5yr"`
	AvgDebt        *float64 `bson:"avg_debt" json:"avg_debt"`
}

// ProgramTrendsResponse is the earnings trend for a single CIP code.
type ProgramTrendsResponse struct {
	CipCode   string               `json:"cip_code"`
	StartYear int                  `json:"start_year"`
	EndYear   int                  `json:"end_year"`
	Trend     []*ProgramTrendPoint `json:"trend"`
}

// ProgramCompareRequest is the POST body for cross-school program comparison.
type ProgramCompareRequest struct {
	CipCode string `json:"cip_code" binding:"required"`
	IDs     []int  `json:"ids" binding:"required"`
	Year    *int   `json:"year"`
}

// ProgramCompareRow is one school's offering of the requested program.
type ProgramCompareRow struct {
	SchoolID        int      `json:"school_id"`
	SchoolName      string   `json:"school_name"`
	State           string   `json:"state"`
	Title           string   `json:"title"`
	CredentialLevel *int     `json:"credential_level"`
	Earnings1yr     *float64 `json:"earnings_1yr"`
	Earnings5yr     *float64 `json:"earnings_5yr"`
	MedianDebt      *float64 `json:"median_debt"`
}

// ProgramCompareResponse lists the per-school rows for a CIP code.
type ProgramCompareResponse struct {
	CipCode string               `json:"cip_code"`
	Year    int                  `json:"year"`
	Results []*ProgramCompareRow `json:"results"`
}

// MajorEntry is one major-taxonomy code with its display name.
type MajorEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// MajorsResponse lists the major taxonomy used by the major filter.
type MajorsResponse struct {
	Majors []*MajorEntry `json:"majors"`
	Total  int           `json:"total"`
}

// CipCodeEntry is one reference CIP code.
type CipCodeEntry struct {
	CipCode string `json:"cip_code"`
	Title   string `json:"title"`
}

// CipCodesResponse is the static CIP-code reference listing.
type CipCodesResponse struct {
	CipCodes []*CipCodeEntry `json:"cip_codes"`
	Total    int             `json:"total"`
}

// SchoolProgramEntry is one field-of-study entry offered by a school.
type SchoolProgramEntry struct {
	CipCode         string   `json:"cip_code"`
	Title           string   `json:"title"`
	CredentialLevel *int     `json:"credential_level"`
	Earnings1yr     *float64 `json:"earnings_1yr"`
	Earnings3yr     *float64 `json:"earnings_3yr"`
	Earnings5yr     *float64 `json:"earnings_5yr"`
	MedianDebt      *float64 `json:"median_debt"`
}

// SchoolProgramsResponse is the per-school program view: degree shares by
// major plus the field-of-study entries.
type SchoolProgramsResponse struct {
	SchoolID          int                   `json:"school_id"`
	SchoolName        string                `json:"school_name"`
	Year              int                   `json:"year"`
	ProgramPercentage map[string]*float64   `json:"program_percentage"`
	Programs          []*SchoolProgramEntry `json:"programs"`
}
