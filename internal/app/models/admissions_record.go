package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdmissionsRecord is one year of admissions and student-body data for an
// institution.
type AdmissionsRecord struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SchoolID   int                `json:"school_id" bson:"school_id"`
	Year       int                `json:"year" bson:"year"`
	Admissions *AdmissionsInfo    `json:"admissions,omitempty" bson:"admissions,omitempty"`
	Student    *StudentBody       `json:"student,omitempty" bson:"student,omitempty"`
}

// AdmissionsInfo carries the admission rate and test-score summaries.
type AdmissionsInfo struct {
	AdmissionRate *AdmissionRate `json:"admission_rate,omitempty" bson:"admission_rate,omitempty"`
	SATScores     *ScoreSummary  `json:"sat_scores,omitempty" bson:"sat_scores,omitempty"`
	ACTScores     *ScoreSummary  `json:"act_scores,omitempty" bson:"act_scores,omitempty"`
}

// AdmissionRate nests the overall admission rate.
type AdmissionRate struct {
	Overall *float64 `json:"overall,omitempty" bson:"overall,omitempty"`
}

// ScoreSummary is a midpoint test-score summary.
type ScoreSummary struct {
	Midpoint *float64 `json:"midpoint,omitempty" bson:"midpoint,omitempty"`
}

// StudentBody carries enrollment size.
type StudentBody struct {
	Size *int `json:"size,omitempty" bson:"size,omitempty"`
}
