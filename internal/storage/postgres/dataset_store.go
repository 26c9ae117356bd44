package postgres

import (
	"context"
	"fmt"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// DatasetStore implements storage.DatasetStore using PostgreSQL.
type DatasetStore struct {
	pool *Pool
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(pool *Pool) *DatasetStore {
	return &DatasetStore{pool: pool}
}

// Compile-time interface check.
var _ storage.DatasetStore = (*DatasetStore)(nil)

// Insert adds a new dataset. Returns ErrDuplicateKey if dataset_id exists.
func (s *DatasetStore) Insert(ctx context.Context, d *domain.Dataset) error {
	if d == nil || d.DatasetID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO datasets (
			dataset_id, user_id, file_name, file_url,
			focus, timeframe_days, seasonality, guardrails,
			campaign_count, row_count, range_start, range_end,
			logic_version, experiment_variant, payload, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16
		)
	`

	_, err := s.pool.Exec(ctx, query,
		d.DatasetID, d.UserID, d.FileName, d.FileURL,
		string(d.Focus), d.TimeframeDays, d.Seasonality, d.Guardrails,
		d.CampaignCount, d.RowCount, d.RangeStart, d.RangeEnd,
		d.LogicVersion, string(d.Variant), d.Payload, d.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert dataset: %w", err)
	}
	return nil
}

// GetByID retrieves a dataset by its ID. Returns ErrNotFound if not exists.
func (s *DatasetStore) GetByID(ctx context.Context, datasetID string) (*domain.Dataset, error) {
	query := `
		SELECT dataset_id, user_id, file_name, file_url,
		       focus, timeframe_days, seasonality, guardrails,
		       campaign_count, row_count, range_start, range_end,
		       logic_version, experiment_variant, payload, created_at
		FROM datasets
		WHERE dataset_id = $1
	`

	var d domain.Dataset
	var focus, variant string
	err := s.pool.QueryRow(ctx, query, datasetID).Scan(
		&d.DatasetID, &d.UserID, &d.FileName, &d.FileURL,
		&focus, &d.TimeframeDays, &d.Seasonality, &d.Guardrails,
		&d.CampaignCount, &d.RowCount, &d.RangeStart, &d.RangeEnd,
		&d.LogicVersion, &variant, &d.Payload, &d.CreatedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get dataset by id: %w", err)
	}
	d.Focus = domain.Focus(focus)
	d.Variant = domain.Variant(variant)
	return &d, nil
}

// ListByUser retrieves datasets for a user, newest first.
func (s *DatasetStore) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Dataset, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT dataset_id, user_id, file_name, file_url,
		       focus, timeframe_days, seasonality, guardrails,
		       campaign_count, row_count, range_start, range_end,
		       logic_version, experiment_variant, payload, created_at
		FROM datasets
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list datasets by user: %w", err)
	}
	defer rows.Close()

	var out []*domain.Dataset
	for rows.Next() {
		var d domain.Dataset
		var focus, variant string
		if err := rows.Scan(
			&d.DatasetID, &d.UserID, &d.FileName, &d.FileURL,
			&focus, &d.TimeframeDays, &d.Seasonality, &d.Guardrails,
			&d.CampaignCount, &d.RowCount, &d.RangeStart, &d.RangeEnd,
			&d.LogicVersion, &variant, &d.Payload, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		d.Focus = domain.Focus(focus)
		d.Variant = domain.Variant(variant)
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datasets: %w", err)
	}
	return out, nil
}
