package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/pkg/apperrors"
)

// Collection names used by the scorecard dataset. The external import
// process owns the contents; this service only reads them.
const (
	CollectionSchools    = "schools"
	CollectionOutcomes   = "costs_aid_completion"
	CollectionAcademics  = "academics_programs"
	CollectionPrograms   = "programs_field_of_study"
	CollectionAdmissions = "admissions_student"
)

// MongoDB holds the client handle and the resolved database.
type MongoDB struct {
	Client       *mongo.Client
	Database     *mongo.Database
	queryTimeout time.Duration
}

// NewMongoDB connects to the document store and verifies the connection.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connTimeout, err := time.ParseDuration(cfg.Database.ConnTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection timeout: %w", err)
	}
	queryTimeout, err := time.ParseDuration(cfg.Database.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query timeout: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(connTimeout).
		SetServerSelectionTimeout(connTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrStoreUnavailable,
			Message: "failed to connect to document store",
			Cause:   err,
		}
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrStoreUnavailable,
			Message: "document store unreachable",
			Cause:   err,
		}
	}

	return &MongoDB{
		Client:       client,
		Database:     client.Database(cfg.Database.Name),
		queryTimeout: queryTimeout,
	}, nil
}

// Collection returns a handle to a named collection.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// QueryContext derives a context bounded by the configured query timeout.
// Every repository call goes through this so a stalled store round-trip
// surfaces as an error instead of hanging the request.
func (db *MongoDB) QueryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// Ping verifies the store is reachable, for health checks.
func (db *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := db.QueryContext(ctx)
	defer cancel()
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
