package storage

import (
	"context"

	"campaign-budget-engine/internal/domain"
)

// DatasetStore provides access to the datasets table: one immutable row
// per engine invocation.
type DatasetStore interface {
	// Insert adds a new dataset. Returns ErrDuplicateKey if dataset_id exists.
	Insert(ctx context.Context, d *domain.Dataset) error

	// GetByID retrieves a dataset by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, datasetID string) (*domain.Dataset, error)

	// ListByUser retrieves datasets for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Dataset, error)
}

// RecommendationStore provides access to the recommendations table: one
// row per campaign per invocation, foreign-keyed to its dataset.
type RecommendationStore interface {
	// InsertBulk adds all recommendations for a dataset atomically.
	// Fails the entire batch on any duplicate.
	InsertBulk(ctx context.Context, recs []*domain.StoredRecommendation) error

	// GetByDatasetID retrieves all recommendations for a dataset,
	// ordered by campaign name ASC.
	GetByDatasetID(ctx context.Context, datasetID string) ([]*domain.StoredRecommendation, error)
}

// PerformanceRowStore holds the raw input rows per dataset for analytics.
type PerformanceRowStore interface {
	// InsertBulk appends the rows of one dataset as a batch.
	InsertBulk(ctx context.Context, datasetID string, rows []domain.PerformanceRow) error

	// GetByDatasetID retrieves all rows for a dataset, ordered by date ASC.
	GetByDatasetID(ctx context.Context, datasetID string) ([]domain.PerformanceRow, error)
}
