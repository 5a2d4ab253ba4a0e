package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AcademicsRecord is one year of degree-mix data for an institution: the
// share of degrees awarded per major taxonomy bucket.
type AcademicsRecord struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SchoolID  int                `json:"school_id" bson:"school_id"`
	Year      int                `json:"year" bson:"year"`
	Academics *AcademicsBlock    `json:"academics,omitempty" bson:"academics,omitempty"`
}

// AcademicsBlock holds the per-major shares keyed by taxonomy code
// (e.g. "computer", "engineering", "business_marketing").
type AcademicsBlock struct {
	ProgramPercentage map[string]*float64 `json:"program_percentage,omitempty" bson:"program_percentage,omitempty"`
}
