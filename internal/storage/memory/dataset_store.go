package memory

import (
	"context"
	"sort"
	"sync"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// DatasetStore is an in-memory implementation of storage.DatasetStore.
type DatasetStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Dataset
}

// NewDatasetStore creates a new in-memory dataset store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{data: make(map[string]*domain.Dataset)}
}

// Compile-time interface check.
var _ storage.DatasetStore = (*DatasetStore)(nil)

// Insert adds a new dataset. Returns ErrDuplicateKey if dataset_id exists.
func (s *DatasetStore) Insert(_ context.Context, d *domain.Dataset) error {
	if d == nil || d.DatasetID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[d.DatasetID]; exists {
		return storage.ErrDuplicateKey
	}

	dCopy := *d
	s.data[d.DatasetID] = &dCopy
	return nil
}

// GetByID retrieves a dataset by its ID. Returns ErrNotFound if not exists.
func (s *DatasetStore) GetByID(_ context.Context, datasetID string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.data[datasetID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	dCopy := *d
	return &dCopy, nil
}

// ListByUser retrieves datasets for a user, newest first.
func (s *DatasetStore) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Dataset, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Dataset
	for _, d := range s.data {
		if d.UserID == userID {
			dCopy := *d
			out = append(out, &dCopy)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].DatasetID < out[j].DatasetID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
