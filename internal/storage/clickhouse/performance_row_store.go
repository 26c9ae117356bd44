package clickhouse

import (
	"context"
	"fmt"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// PerformanceRowStore implements storage.PerformanceRowStore using ClickHouse.
// Raw invocation rows are kept append-only for offline analysis; the engine
// itself never reads them back.
type PerformanceRowStore struct {
	conn *Conn
}

// NewPerformanceRowStore creates a new PerformanceRowStore.
func NewPerformanceRowStore(conn *Conn) *PerformanceRowStore {
	return &PerformanceRowStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PerformanceRowStore = (*PerformanceRowStore)(nil)

// InsertBulk appends the rows of one dataset as a batch.
func (s *PerformanceRowStore) InsertBulk(ctx context.Context, datasetID string, rows []domain.PerformanceRow) error {
	if datasetID == "" {
		return storage.ErrInvalidInput
	}
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO performance_rows (
			dataset_id, row_date, campaign,
			spend, leads, demos, enrollments, conversions, impressions, clicks,
			budget, bid_strategy, tcpa, budget_utilization
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range rows {
		if err := batch.Append(
			datasetID, r.Date, r.Campaign,
			r.Spend, r.Leads, r.Demos, r.Enrollments, r.Conversions, r.Impressions, r.Clicks,
			r.Budget, r.BidStrategy, r.TCPA, r.BudgetUtilization,
		); err != nil {
			return fmt.Errorf("append performance row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send performance row batch: %w", err)
	}
	return nil
}

// GetByDatasetID retrieves all rows for a dataset, ordered by date ASC.
func (s *PerformanceRowStore) GetByDatasetID(ctx context.Context, datasetID string) ([]domain.PerformanceRow, error) {
	query := `
		SELECT row_date, campaign,
		       spend, leads, demos, enrollments, conversions, impressions, clicks,
		       budget, bid_strategy, tcpa, budget_utilization
		FROM performance_rows
		WHERE dataset_id = ?
		ORDER BY row_date ASC, campaign ASC
	`

	rows, err := s.conn.Query(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("query performance rows: %w", err)
	}
	defer rows.Close()

	var out []domain.PerformanceRow
	for rows.Next() {
		var r domain.PerformanceRow
		if err := rows.Scan(
			&r.Date, &r.Campaign,
			&r.Spend, &r.Leads, &r.Demos, &r.Enrollments, &r.Conversions, &r.Impressions, &r.Clicks,
			&r.Budget, &r.BidStrategy, &r.TCPA, &r.BudgetUtilization,
		); err != nil {
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate performance rows: %w", err)
	}
	return out, nil
}
