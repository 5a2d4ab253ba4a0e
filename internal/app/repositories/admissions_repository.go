package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegescope/api/internal/db"
)

// AdmissionsRepository handles read access to the admissions_student
// collection.
type AdmissionsRepository struct {
	store *db.MongoDB
	coll  *mongo.Collection
}

// NewAdmissionsRepository creates a new admissions repository.
func NewAdmissionsRepository(store *db.MongoDB) *AdmissionsRepository {
	return &AdmissionsRepository{
		store: store,
		coll:  store.Collection(db.CollectionAdmissions),
	}
}

// FindBySchoolYear retrieves the admissions record for one (school, year),
// or nil, nil when none exists.
func (r *AdmissionsRepository) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	ctx, cancel := r.store.QueryContext(ctx)
	defer cancel()

	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"school_id": schoolID, "year": year}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admissions for school %d year %d: %w", schoolID, year, err)
	}
	return doc, nil
}
