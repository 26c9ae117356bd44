package memory

import (
	"context"
	"sort"
	"sync"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// PerformanceRowStore is an in-memory implementation of storage.PerformanceRowStore.
type PerformanceRowStore struct {
	mu   sync.RWMutex
	data map[string][]domain.PerformanceRow // keyed by dataset_id
}

// NewPerformanceRowStore creates a new in-memory performance row store.
func NewPerformanceRowStore() *PerformanceRowStore {
	return &PerformanceRowStore{data: make(map[string][]domain.PerformanceRow)}
}

// Compile-time interface check.
var _ storage.PerformanceRowStore = (*PerformanceRowStore)(nil)

// InsertBulk appends the rows of one dataset as a batch.
func (s *PerformanceRowStore) InsertBulk(_ context.Context, datasetID string, rows []domain.PerformanceRow) error {
	if datasetID == "" {
		return storage.ErrInvalidInput
	}
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[datasetID] = append(s.data[datasetID], rows...)
	return nil
}

// GetByDatasetID retrieves all rows for a dataset, ordered by date ASC.
func (s *PerformanceRowStore) GetByDatasetID(_ context.Context, datasetID string) ([]domain.PerformanceRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.data[datasetID]
	if !ok {
		return nil, nil
	}

	out := make([]domain.PerformanceRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Campaign < out[j].Campaign
	})
	return out, nil
}
