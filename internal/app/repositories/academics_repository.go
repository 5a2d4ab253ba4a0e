package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collegescope/api/internal/db"
)

// AcademicsRepository handles read access to the academics_programs
// collection, which carries per-school degree shares by major.
type AcademicsRepository struct {
	store *db.MongoDB
	coll  *mongo.Collection
}

// NewAcademicsRepository creates a new academics repository.
func NewAcademicsRepository(store *db.MongoDB) *AcademicsRepository {
	return &AcademicsRepository{
		store: store,
		coll:  store.Collection(db.CollectionAcademics),
	}
}

// SchoolIDsWithMajor returns the ids of schools whose share of degrees in
// the given major meets the threshold for the year. Used as the first
// phase of major filtering; an empty result is a valid answer.
func (r *AcademicsRepository) SchoolIDsWithMajor(ctx context.Context, major string, threshold float64, year int) ([]int, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	filter := bson.M{
		"year":                                  year,
		"academics.program_percentage." + major: bson.M{"$gte": threshold},
	}
	opts := options.Find().SetProjection(bson.M{"school_id": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding schools with major %s: %w", major, err)
	}
	var docs []struct {
		SchoolID int `bson:"school_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding major lookup: %w", err)
	}
	ids := make([]int, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.SchoolID)
	}
	return ids, nil
}

// FindBySchoolYear retrieves the academics record for one (school, year),
// or nil, nil when none exists.
func (r *AcademicsRepository) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"school_id": schoolID, "year": year}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academics for school %d year %d: %w", schoolID, year, err)
	}
	return doc, nil
}
