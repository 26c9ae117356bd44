package memory

import (
	"context"
	"sort"
	"sync"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// RecommendationStore is an in-memory implementation of storage.RecommendationStore.
type RecommendationStore struct {
	mu   sync.RWMutex
	data map[string]*domain.StoredRecommendation // keyed by recommendation_id
}

// NewRecommendationStore creates a new in-memory recommendation store.
func NewRecommendationStore() *RecommendationStore {
	return &RecommendationStore{data: make(map[string]*domain.StoredRecommendation)}
}

// Compile-time interface check.
var _ storage.RecommendationStore = (*RecommendationStore)(nil)

// InsertBulk adds all recommendations for a dataset atomically.
// Fails the entire batch on any duplicate.
func (s *RecommendationStore) InsertBulk(_ context.Context, recs []*domain.StoredRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate and detect duplicates (existing + intra-batch)
	batchKeys := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		if r == nil || r.RecommendationID == "" || r.DatasetID == "" || r.Campaign == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[r.RecommendationID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[r.RecommendationID]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[r.RecommendationID] = struct{}{}
	}

	// Second pass: commit
	for _, r := range recs {
		rCopy := *r
		s.data[r.RecommendationID] = &rCopy
	}
	return nil
}

// GetByDatasetID retrieves all recommendations for a dataset,
// ordered by campaign name ASC.
func (s *RecommendationStore) GetByDatasetID(_ context.Context, datasetID string) ([]*domain.StoredRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.StoredRecommendation
	for _, r := range s.data {
		if r.DatasetID == datasetID {
			rCopy := *r
			out = append(out, &rCopy)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Campaign < out[j].Campaign
	})
	return out, nil
}
