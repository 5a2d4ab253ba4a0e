package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegescope/api/internal/app/models"
)

// Store interfaces consumed by the service layer. Services depend on
// these so tests can substitute fakes without a live store.

// SchoolStore describes school collection access.
type SchoolStore interface {
	FindByID(ctx context.Context, schoolID int) (bson.M, error)
	FindByIDs(ctx context.Context, ids []int) ([]bson.M, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]bson.M, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Search(ctx context.Context, query string, skip, limit int64) ([]bson.M, int64, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error
}

// OutcomeStore describes outcome collection access.
type OutcomeStore interface {
	FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error)
	History(ctx context.Context, schoolID int) ([]bson.M, error)
	Years(ctx context.Context) ([]int, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error
}

// AcademicsStore describes academics collection access.
type AcademicsStore interface {
	SchoolIDsWithMajor(ctx context.Context, major string, threshold float64, year int) ([]int, error)
	FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error)
}

// ProgramStore describes field-of-study collection access.
type ProgramStore interface {
	FindBySchoolYear(ctx context.Context, schoolID, year int) (*models.FieldOfStudyRecord, error)
	FindBySchoolsYear(ctx context.Context, schoolIDs []int, year int) ([]*models.FieldOfStudyRecord, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error
}

// AdmissionsStore describes admissions collection access.
type AdmissionsStore interface {
	FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error)
}
