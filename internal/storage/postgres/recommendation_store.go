package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/storage"
)

// RecommendationStore implements storage.RecommendationStore using PostgreSQL.
type RecommendationStore struct {
	pool *Pool
}

// NewRecommendationStore creates a new RecommendationStore.
func NewRecommendationStore(pool *Pool) *RecommendationStore {
	return &RecommendationStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RecommendationStore = (*RecommendationStore)(nil)

// InsertBulk adds all recommendations for a dataset atomically.
// Fails the entire batch on any duplicate.
func (s *RecommendationStore) InsertBulk(ctx context.Context, recs []*domain.StoredRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recommendations (
			recommendation_id, dataset_id, campaign,
			action, adjustment_type, confidence,
			current_budget, recommended_budget, budget_delta,
			utilization, stop_loss, rationale, guardrail_notes,
			score_detail, experiment_variant, logic_version, created_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17
		)
	`

	for _, r := range recs {
		if r == nil || r.RecommendationID == "" || r.DatasetID == "" || r.Campaign == "" {
			return storage.ErrInvalidInput
		}

		notes, err := json.Marshal(r.GuardrailNotes)
		if err != nil {
			return fmt.Errorf("marshal guardrail notes: %w", err)
		}
		detail, err := json.Marshal(r.ScoreDetail)
		if err != nil {
			return fmt.Errorf("marshal score detail: %w", err)
		}

		_, err = tx.Exec(ctx, query,
			r.RecommendationID, r.DatasetID, r.Campaign,
			string(r.Action), string(r.AdjustmentType), r.Confidence,
			r.CurrentBudget, r.RecommendedBudget, r.BudgetDelta,
			r.Utilization, r.StopLoss, r.Rationale, notes,
			detail, string(r.Variant), r.Recommendation.LogicVersion, r.CreatedAt,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert recommendation: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByDatasetID retrieves all recommendations for a dataset,
// ordered by campaign name ASC.
func (s *RecommendationStore) GetByDatasetID(ctx context.Context, datasetID string) ([]*domain.StoredRecommendation, error) {
	query := `
		SELECT recommendation_id, dataset_id, campaign,
		       action, adjustment_type, confidence,
		       current_budget, recommended_budget, budget_delta,
		       utilization, stop_loss, rationale, guardrail_notes,
		       score_detail, experiment_variant, logic_version, created_at
		FROM recommendations
		WHERE dataset_id = $1
		ORDER BY campaign ASC
	`

	rows, err := s.pool.Query(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("get recommendations by dataset: %w", err)
	}
	defer rows.Close()

	var out []*domain.StoredRecommendation
	for rows.Next() {
		var r domain.StoredRecommendation
		var action, adjustment, variant string
		var notes, detail []byte
		if err := rows.Scan(
			&r.RecommendationID, &r.DatasetID, &r.Campaign,
			&action, &adjustment, &r.Confidence,
			&r.CurrentBudget, &r.RecommendedBudget, &r.BudgetDelta,
			&r.Utilization, &r.StopLoss, &r.Rationale, &notes,
			&detail, &variant, &r.Recommendation.LogicVersion, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		r.Action = domain.Action(action)
		r.AdjustmentType = domain.AdjustmentType(adjustment)
		r.Variant = domain.Variant(variant)
		if err := json.Unmarshal(notes, &r.GuardrailNotes); err != nil {
			return nil, fmt.Errorf("unmarshal guardrail notes: %w", err)
		}
		if err := json.Unmarshal(detail, &r.ScoreDetail); err != nil {
			return nil, fmt.Errorf("unmarshal score detail: %w", err)
		}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return out, nil
}
