package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/db"
)

// ProgramRepository handles read access to the programs_field_of_study
// collection.
type ProgramRepository struct {
	store *db.MongoDB
	coll  *mongo.Collection
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(store *db.MongoDB) *ProgramRepository {
	return &ProgramRepository{
		store: store,
		coll:  store.Collection(db.CollectionPrograms),
	}
}

// FindBySchoolYear retrieves the field-of-study record for one
// (school, year), or nil, nil when none exists.
func (r *ProgramRepository) FindBySchoolYear(ctx context.Context, schoolID, year int) (*models.FieldOfStudyRecord, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	var record models.FieldOfStudyRecord
	err := r.coll.FindOne(ctx, bson.M{"school_id": schoolID, "year": year}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs for school %d year %d: %w", schoolID, year, err)
	}
	return &record, nil
}

// FindBySchoolsYear retrieves the field-of-study records for a set of
// schools in one year.
func (r *ProgramRepository) FindBySchoolsYear(ctx context.Context, schoolIDs []int, year int) ([]*models.FieldOfStudyRecord, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	filter := bson.M{"school_id": bson.M{"$in": schoolIDs}, "year": year}
	cursor, err := r.coll.Find(ctx, filter, options.Find())
	if err != nil {
		return nil, fmt.Errorf("error retrieving program records: %w", err)
	}
	var records []*models.FieldOfStudyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding program records: %w", err)
	}
	return records, nil
}

// Aggregate runs a pipeline over field-of-study records and decodes into
// results, which must be a pointer to a slice.
func (r *ProgramRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return fmt.Errorf("error aggregating programs: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding aggregation: %w", err)
	}
	return nil
}
