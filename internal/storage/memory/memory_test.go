package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

func TestDatasetStore_InsertAndGet(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	ds := &domain.Dataset{
		DatasetID: "ds-1",
		UserID:    "user-1",
		Focus:     domain.FocusDemo,
		Variant:   domain.VariantA,
		CreatedAt: time.Now(),
	}
	if err := store.Insert(ctx, ds); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "ds-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("expected user user-1, got %s", got.UserID)
	}

	// Store keeps its own copy.
	got.UserID = "mutated"
	again, err := store.GetByID(ctx, "ds-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if again.UserID != "user-1" {
		t.Errorf("stored dataset mutated through returned pointer")
	}
}

func TestDatasetStore_Duplicate(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	ds := &domain.Dataset{DatasetID: "ds-1"}
	if err := store.Insert(ctx, ds); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := store.Insert(ctx, ds); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestDatasetStore_InvalidInput(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	if err := store.Insert(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil, got %v", err)
	}
	if err := store.Insert(ctx, &domain.Dataset{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty id, got %v", err)
	}
}

func TestDatasetStore_NotFound(t *testing.T) {
	store := NewDatasetStore()

	if _, err := store.GetByID(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDatasetStore_ListByUser(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"ds-a", "ds-b", "ds-c"} {
		ds := &domain.Dataset{
			DatasetID: id,
			UserID:    "user-list",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Insert(ctx, ds); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := store.Insert(ctx, &domain.Dataset{DatasetID: "ds-other", UserID: "other"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.ListByUser(ctx, "user-list", 0)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(got))
	}
	// Newest first.
	if got[0].DatasetID != "ds-c" || got[2].DatasetID != "ds-a" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].DatasetID, got[1].DatasetID, got[2].DatasetID)
	}

	limited, err := store.ListByUser(ctx, "user-list", 2)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected limit of 2, got %d", len(limited))
	}
}

func TestRecommendationStore_InsertBulkAndGet(t *testing.T) {
	store := NewRecommendationStore()
	ctx := context.Background()

	recs := []*domain.StoredRecommendation{
		{
			RecommendationID: "rec-2",
			DatasetID:        "ds-1",
			Recommendation:   domain.Recommendation{Campaign: "Zeta", Action: domain.ActionHold},
		},
		{
			RecommendationID: "rec-1",
			DatasetID:        "ds-1",
			Recommendation:   domain.Recommendation{Campaign: "Alpha", Action: domain.ActionScale},
		},
	}
	if err := store.InsertBulk(ctx, recs); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByDatasetID(ctx, "ds-1")
	if err != nil {
		t.Fatalf("GetByDatasetID failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	// Campaign ASC.
	if got[0].Campaign != "Alpha" || got[1].Campaign != "Zeta" {
		t.Errorf("unexpected order: %s, %s", got[0].Campaign, got[1].Campaign)
	}
}

func TestRecommendationStore_DuplicateRejectsWholeBatch(t *testing.T) {
	store := NewRecommendationStore()
	ctx := context.Background()

	first := []*domain.StoredRecommendation{
		{RecommendationID: "rec-1", DatasetID: "ds-1", Recommendation: domain.Recommendation{Campaign: "A"}},
	}
	if err := store.InsertBulk(ctx, first); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	second := []*domain.StoredRecommendation{
		{RecommendationID: "rec-2", DatasetID: "ds-1", Recommendation: domain.Recommendation{Campaign: "B"}},
		{RecommendationID: "rec-1", DatasetID: "ds-1", Recommendation: domain.Recommendation{Campaign: "A"}},
	}
	if err := store.InsertBulk(ctx, second); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	got, err := store.GetByDatasetID(ctx, "ds-1")
	if err != nil {
		t.Fatalf("GetByDatasetID failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("partial batch committed: expected 1 recommendation, got %d", len(got))
	}
}

func TestRecommendationStore_IntraBatchDuplicate(t *testing.T) {
	store := NewRecommendationStore()
	ctx := context.Background()

	recs := []*domain.StoredRecommendation{
		{RecommendationID: "rec-1", DatasetID: "ds-1", Recommendation: domain.Recommendation{Campaign: "A"}},
		{RecommendationID: "rec-1", DatasetID: "ds-1", Recommendation: domain.Recommendation{Campaign: "B"}},
	}
	if err := store.InsertBulk(ctx, recs); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestRecommendationStore_EmptyBatch(t *testing.T) {
	store := NewRecommendationStore()

	if err := store.InsertBulk(context.Background(), nil); err != nil {
		t.Errorf("empty batch should be a no-op, got %v", err)
	}
}

func TestPerformanceRowStore_InsertAndGet(t *testing.T) {
	store := NewPerformanceRowStore()
	ctx := context.Background()

	rows := []domain.PerformanceRow{
		{Date: "2026-03-02", Campaign: "Brand", Spend: 120},
		{Date: "2026-03-01", Campaign: "Brand", Spend: 100},
		{Date: "2026-03-01", Campaign: "Acquisition", Spend: 80},
	}
	if err := store.InsertBulk(ctx, "ds-1", rows); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByDatasetID(ctx, "ds-1")
	if err != nil {
		t.Fatalf("GetByDatasetID failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	// Date ASC, campaign ASC within a date.
	if got[0].Campaign != "Acquisition" || got[1].Campaign != "Brand" || got[2].Date != "2026-03-02" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestPerformanceRowStore_InvalidInput(t *testing.T) {
	store := NewPerformanceRowStore()

	err := store.InsertBulk(context.Background(), "", []domain.PerformanceRow{{Campaign: "A"}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPerformanceRowStore_UnknownDataset(t *testing.T) {
	store := NewPerformanceRowStore()

	got, err := store.GetByDatasetID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByDatasetID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil rows for unknown dataset, got %d", len(got))
	}
}
