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

// SchoolRepository handles read access to the schools collection.
type SchoolRepository struct {
	store *db.MongoDB
	coll  *mongo.Collection
}

// NewSchoolRepository creates a new school repository.
func NewSchoolRepository(store *db.MongoDB) *SchoolRepository {
	return &SchoolRepository{
		store: store,
		coll:  store.Collection(db.CollectionSchools),
	}
}

// FindByID retrieves one school document by its scorecard id.
func (r *SchoolRepository) FindByID(ctx context.Context, schoolID int) (bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"school_id": schoolID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving school %d: %w", schoolID, err)
	}
	return doc, nil
}

// FindByIDs retrieves the school documents for a set of ids. Missing ids
// are simply absent from the result.
func (r *SchoolRepository) FindByIDs(ctx context.Context, ids []int) ([]bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"school_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools by id: %w", err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding schools: %w", err)
	}
	return docs, nil
}

// Find runs a filtered, sorted, paginated query over schools.
func (r *SchoolRepository) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error filtering schools: %w", err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding schools: %w", err)
	}
	return docs, nil
}

// Count counts the schools matching a filter, for pagination totals.
func (r *SchoolRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting schools: %w", err)
	}
	return total, nil
}

// Search runs a text-index search over school names and aliases, ordered
// by relevance, and returns the page plus the total hit count.
func (r *SchoolRepository) Search(ctx context.Context, query string, skip, limit int64) ([]bson.M, int64, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	filter := bson.M{"$text": bson.M{"$search": query}}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting search results: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching schools: %w", err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("error decoding search results: %w", err)
	}
	return docs, total, nil
}

// Aggregate runs a pipeline over schools and decodes into results, which
// must be a pointer to a slice.
func (r *SchoolRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return fmt.Errorf("error aggregating schools: %w", err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding aggregation: %w", err)
	}
	return nil
}
