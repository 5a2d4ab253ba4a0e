package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// School is the reference entity for one institution. It is imported from
// the College Scorecard institution file and never written by this service.
type School struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SchoolID int                `json:"school_id" bson:"school_id"`
	Ope8ID   *string            `json:"ope8_id,omitempty" bson:"ope8_id,omitempty"`
	Ope6ID   *string            `json:"ope6_id,omitempty" bson:"ope6_id,omitempty"`
	School   SchoolInfo         `json:"school" bson:"school"`
	Location *Location          `json:"location,omitempty" bson:"location,omitempty"`
	// Latest carries a denormalized copy of the most recent satellite-year
	// fields so list filtering can run against a single collection.
	Latest *LatestSnapshot `json:"latest,omitempty" bson:"latest,omitempty"`
}

// SchoolInfo holds the descriptive attributes of an institution.
type SchoolInfo struct {
	Name      string          `json:"name" bson:"name"`
	Alias     *string         `json:"alias,omitempty" bson:"alias,omitempty"`
	City      string          `json:"city" bson:"city"`
	State     string          `json:"state" bson:"state"`
	Zip       *string         `json:"zip,omitempty" bson:"zip,omitempty"`
	SchoolURL *string         `json:"school_url,omitempty" bson:"school_url,omitempty"`
	Ownership int             `json:"ownership" bson:"ownership"`
	Degrees   *DegreesAwarded `json:"degrees_awarded,omitempty" bson:"degrees_awarded,omitempty"`
}

// DegreesAwarded classifies the institution's credential mix.
type DegreesAwarded struct {
	Predominant *int `json:"predominant,omitempty" bson:"predominant,omitempty"`
	Highest     *int `json:"highest,omitempty" bson:"highest,omitempty"`
}

// Location is the institution's geographic position.
type Location struct {
	Lat *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty" bson:"lon,omitempty"`
}

// LatestSnapshot mirrors the satellite-record shape inside the school
// document. Older import batches stored size at the top level, newer ones
// under student.size; both stay declared so the field-path table can name
// either.
type LatestSnapshot struct {
	Year       *int            `json:"year,omitempty" bson:"year,omitempty"`
	Size       *int            `json:"size,omitempty" bson:"size,omitempty"`
	Student    *StudentBody    `json:"student,omitempty" bson:"student,omitempty"`
	Cost       *CostBlock      `json:"cost,omitempty" bson:"cost,omitempty"`
	Earnings   *EarningsBlock  `json:"earnings,omitempty" bson:"earnings,omitempty"`
	Completion *Completion     `json:"completion,omitempty" bson:"completion,omitempty"`
	Admissions *AdmissionsInfo `json:"admissions,omitempty" bson:"admissions,omitempty"`
}
