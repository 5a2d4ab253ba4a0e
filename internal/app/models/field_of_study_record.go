package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FieldOfStudyRecord is one year of per-program outcome data for an
// institution, one entry per CIP-coded program.
type FieldOfStudyRecord struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SchoolID int                `json:"school_id" bson:"school_id"`
	Year     int                `json:"year" bson:"year"`
	Programs []ProgramEntry     `json:"programs,omitempty" bson:"programs,omitempty"`
}

// ProgramEntry is a single program's earnings and debt outcomes.
type ProgramEntry struct {
	CipCode         string           `json:"cip_code" bson:"cip_code"`
	Title           *string          `json:"title,omitempty" bson:"title,omitempty"`
	CredentialLevel *int             `json:"credential_level,omitempty" bson:"credential_level,omitempty"`
	Earnings        *ProgramEarnings `json:"earnings,omitempty" bson:"earnings,omitempty"`
	Debt            *ProgramDebt     `json:"debt,omitempty" bson:"debt,omitempty"`
}

// ProgramEarnings is median earnings by years-after-completion horizon.
type ProgramEarnings struct {
	OneYearAfter    *EarningsPoint `json:"1_yr_after,omitempty" bson:"1_yr_after,omitempty"`
	ThreeYearsAfter *EarningsPoint `json:"3_yrs_after,omitempty" bson:"3_yrs_after,omitempty"`
	FiveYearsAfter  *EarningsPoint `json:"5_yrs_after,omitempty" bson:"5_yrs_after,omitempty"`
}

// ProgramDebt is the program-level median debt.
type ProgramDebt struct {
	Median *float64 `json:"median,omitempty" bson:"median,omitempty"`
}
