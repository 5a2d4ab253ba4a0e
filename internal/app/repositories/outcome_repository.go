package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collegescope/api/internal/db"
)

// OutcomeRepository handles read access to the costs_aid_completion
// collection, the per-year satellite records.
type OutcomeRepository struct {
	store *db.MongoDB
	coll  *mongo.Collection
}

// NewOutcomeRepository creates a new outcome repository.
func NewOutcomeRepository(store *db.MongoDB) *OutcomeRepository {
	return &OutcomeRepository{
		store: store,
		coll:  store.Collection(db.CollectionOutcomes),
	}
}

// FindBySchoolYear retrieves the outcome record for one (school, year).
// A missing record means no data for that year and returns nil, nil.
func (r *OutcomeRepository) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"school_id": schoolID, "year": year}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving outcomes for school %d year %d: %w", schoolID, year, err)
	}
	return doc, nil
}

// History retrieves every year's outcome record for a school, oldest
// first.
func (r *OutcomeRepository) History(ctx context.Context, schoolID int) ([]bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"school_id": schoolID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving outcome history for school %d: %w", schoolID, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding outcome history: %w", err)
	}
	return docs, nil
}

// Years returns the distinct dataset years present, ascending.
func (r *OutcomeRepository) Years(ctx context.Context) ([]int, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "year", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing dataset years: %w", err)
	}
	years := make([]int, 0, len(raw))
	for _, v := range raw {
		switch y := v.(type) {
		case int32:
			years = append(years, int(y))
		case int64:
			years = append(years, int(y))
		case int:
			years = append(years, y)
		case float64:
			years = append(years, int(y))
		}
	}
	sort.Ints(years)
	return years, nil
}

// Aggregate runs a pipeline over outcome records and decodes into
// results, which must be a pointer to a slice.
func (r *OutcomeRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return fmt.Errorf("error aggregating outcomes: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding aggregation: %w", err)
	}
	return nil
}
