package engine

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/idhash"
	"campaign-budget-engine/internal/storage"
)

// Persister writes a completed run to the datastore. All writes are
// best-effort: failures are reported in the outcome, never returned as
// an error that would discard the computed recommendations.
type Persister struct {
	datasets storage.DatasetStore
	recs     storage.RecommendationStore
	rows     storage.PerformanceRowStore // optional, nil skips the analytics copy
	logger   *log.Logger
	now      func() time.Time
}

// NewPersister creates a Persister over the given stores. rowStore may
// be nil when no analytics sink is configured.
func NewPersister(
	datasets storage.DatasetStore,
	recs storage.RecommendationStore,
	rows storage.PerformanceRowStore,
	logger *log.Logger,
) *Persister {
	return &Persister{
		datasets: datasets,
		recs:     recs,
		rows:     rows,
		logger:   logger,
		now:      time.Now,
	}
}

// PersistenceOutcome reports what landed and what failed for one run.
// A nil outcome means persistence was skipped entirely.
type PersistenceOutcome struct {
	DatasetID  string
	DatasetErr error
	RecErr     error
	RowErr     error
}

// Persist records the run for the given user. Anonymous runs (empty
// userID) or a nil dataset store skip persistence and return nil.
func (p *Persister) Persist(ctx context.Context, userID string, req *Request, res *Result) *PersistenceOutcome {
	if p == nil || p.datasets == nil || userID == "" {
		return nil
	}

	out := &PersistenceOutcome{DatasetID: uuid.NewString()}
	createdAt := p.now().UTC()

	guardrails, err := json.Marshal(res.Config)
	if err != nil {
		guardrails = []byte("{}")
	}
	payload, err := json.Marshal(struct {
		Request         *Request                `json:"request"`
		Recommendations []domain.Recommendation `json:"recommendations"`
	}{req, res.Recommendations})
	if err != nil {
		payload = []byte("{}")
	}

	ds := &domain.Dataset{
		DatasetID:     out.DatasetID,
		UserID:        userID,
		FileName:      req.FileName,
		FileURL:       req.FileURL,
		Focus:         res.Focus,
		TimeframeDays: req.TimeframeSelection,
		Seasonality:   req.SeasonalityMultiplier,
		Guardrails:    guardrails,
		CampaignCount: res.CampaignCount,
		RowCount:      res.RowCount,
		RangeStart:    res.RangeStart,
		RangeEnd:      res.RangeEnd,
		LogicVersion:  domain.LogicVersion,
		Variant:       res.Variant,
		Payload:       payload,
		CreatedAt:     createdAt,
	}

	if err := p.datasets.Insert(ctx, ds); err != nil {
		out.DatasetErr = err
		p.logger.Printf("dataset insert failed: %v", err)
		// Recommendations are foreign-keyed to the dataset row; nothing
		// more to write against a dataset that never landed.
		return out
	}

	if p.recs != nil {
		stored := make([]*domain.StoredRecommendation, 0, len(res.Recommendations))
		for _, r := range res.Recommendations {
			stored = append(stored, &domain.StoredRecommendation{
				RecommendationID: idhash.ComputeRecommendationID(
					out.DatasetID, r.Campaign, r.LogicVersion, string(r.Variant)),
				DatasetID:      out.DatasetID,
				Recommendation: r,
				CreatedAt:      createdAt,
			})
		}
		if err := p.recs.InsertBulk(ctx, stored); err != nil {
			out.RecErr = err
			p.logger.Printf("recommendation insert failed for dataset %s: %v", out.DatasetID, err)
		}
	}

	if p.rows != nil {
		if err := p.rows.InsertBulk(ctx, out.DatasetID, req.Rows); err != nil {
			out.RowErr = err
			p.logger.Printf("performance row insert failed for dataset %s: %v", out.DatasetID, err)
		}
	}

	return out
}
