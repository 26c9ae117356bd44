// Package engine runs the full recommendation pipeline for one batch of
// performance rows: aggregate, benchmark, score, classify, guardrail,
// budget delta and rationale. Every invocation builds fresh state; the
// engine holds no mutable data across runs.
package engine

import (
	"errors"
	"sort"
	"time"

	"campaign-budget-engine/internal/aggregate"
	"campaign-budget-engine/internal/benchmark"
	"campaign-budget-engine/internal/config"
	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/policy"
	"campaign-budget-engine/internal/rationale"
	"campaign-budget-engine/internal/scoring"
)

// ErrNoRows is returned for a request with no usable performance rows.
var ErrNoRows = errors.New("rows are required")

// defaultSelectionDays is the selected-window length when the request
// names neither a timeframe selection nor a custom range.
const defaultSelectionDays = 28

// CustomRange overrides the selected reporting window.
type CustomRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Request is the engine invocation payload.
type Request struct {
	Rows                  []domain.PerformanceRow            `json:"rows"`
	Focus                 string                             `json:"focus,omitempty"`
	TimeframeSelection    int                                `json:"timeframeSelection,omitempty"`
	CustomRange           *CustomRange                       `json:"customRange,omitempty"`
	SeasonalityMultiplier float64                            `json:"seasonalityMultiplier,omitempty"`
	GuardrailOverrides    *config.GuardrailOverrides         `json:"guardrailOverrides,omitempty"`
	CampaignSettings      map[string]domain.CampaignSettings `json:"campaignSettings,omitempty"`
	ExperimentVariant     string                             `json:"experimentVariant,omitempty"`
	FileName              string                             `json:"fileName,omitempty"`
	FileURL               string                             `json:"fileUrl,omitempty"`
}

// Result is one complete engine run.
type Result struct {
	Recommendations []domain.Recommendation
	Focus           domain.Focus
	Variant         domain.Variant
	Config          config.EngineConfig
	RangeStart      time.Time
	RangeEnd        time.Time
	CampaignCount   int
	RowCount        int
}

// Engine executes recommendation runs. The clock is injectable so runs
// with coerced dates stay reproducible in tests.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an Engine with a fixed clock source.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Run executes the pipeline for one request.
func (e *Engine) Run(req *Request) (*Result, error) {
	if req == nil || len(req.Rows) == 0 {
		return nil, ErrNoRows
	}

	cfg := config.Merge(config.Default(), req.GuardrailOverrides)
	focus := domain.ParseFocus(req.Focus)
	variant := domain.ParseVariant(req.ExperimentVariant)

	seasonality := req.SeasonalityMultiplier
	if seasonality <= 0 {
		seasonality = 1.0
	}

	now := e.now()
	dated := aggregate.ParseRows(req.Rows, now, cfg.RejectBadDates)
	if len(dated) == 0 {
		return nil, ErrNoRows
	}

	var customStart, customEnd *time.Time
	if req.CustomRange != nil {
		if t, ok := aggregate.ParseDate(req.CustomRange.Start); ok {
			customStart = &t
		}
		if t, ok := aggregate.ParseDate(req.CustomRange.End); ok {
			customEnd = &t
		}
	}

	selDays := req.TimeframeSelection
	if selDays <= 0 {
		selDays = defaultSelectionDays
	}

	end := aggregate.ResolveEndDate(dated, customEnd, now)
	agg := aggregate.Run(dated, end, customStart, selDays)
	benchmarks := benchmark.Compute(agg.Fixed)

	names := make([]string, 0, len(agg.AllTime))
	for name := range agg.AllTime {
		names = append(names, name)
	}
	sort.Strings(names)

	recs := make([]domain.Recommendation, 0, len(names))
	for _, name := range names {
		recs = append(recs, e.recommend(name, agg, benchmarks, cfg, req, focus, variant, seasonality))
	}

	return &Result{
		Recommendations: recs,
		Focus:           focus,
		Variant:         variant,
		Config:          cfg,
		RangeStart:      agg.SelectedStart,
		RangeEnd:        agg.End,
		CampaignCount:   len(names),
		RowCount:        len(req.Rows),
	}, nil
}

// recommend produces the decision for one campaign.
func (e *Engine) recommend(
	name string,
	agg *aggregate.Result,
	benchmarks map[domain.Timeframe]domain.Benchmark,
	cfg config.EngineConfig,
	req *Request,
	focus domain.Focus,
	variant domain.Variant,
	seasonality float64,
) domain.Recommendation {
	perWindow := make(map[domain.Timeframe]*domain.CampaignMetrics, 3)
	for _, tf := range domain.Timeframes() {
		if m := agg.Fixed[tf][name]; m != nil {
			perWindow[tf] = m
		}
	}

	score, detail := scoring.Score(perWindow, benchmarks, focus, variant, seasonality, cfg.MaxOutperformance)
	action := policy.Classify(score)

	// Context metrics: selected window, all-time when the campaign has no
	// rows in it.
	ctxMetrics := agg.Selected[name]
	if ctxMetrics == nil {
		ctxMetrics = agg.AllTime[name]
	}
	if ctxMetrics == nil {
		ctxMetrics = &domain.CampaignMetrics{Campaign: name}
	}

	var util7, spend7, conv7 float64
	if m := perWindow[domain.TimeframeD7]; m != nil {
		util7 = m.Utilization
		spend7 = m.Spend
		conv7 = m.Conversions
	}

	settings := req.CampaignSettings[name]
	guarded := policy.Apply(cfg, policy.GuardrailInput{
		Action:       action,
		BidStrategy:  ctxMetrics.BidStrategy,
		Utilization7: util7,
		Spend7:       spend7,
		Conversions7: conv7,
		LastChange:   settings.LastBudgetChangeDate,
		End:          agg.End,
	})

	recommended, delta := policy.BudgetDelta(cfg, guarded.Action, ctxMetrics.Budget, settings)

	var cost28, bench28 float64
	if m := perWindow[domain.TimeframeD28]; m != nil {
		b := benchmarks[domain.TimeframeD28]
		if focus == domain.FocusEnrollment {
			cost28, bench28 = m.CostPerEnrollment, b.CostPerEnrollment
		} else {
			cost28, bench28 = m.CostPerDemo, b.CostPerDemo
		}
	}

	return domain.Recommendation{
		Campaign:          name,
		Action:            guarded.Action,
		AdjustmentType:    guarded.AdjustmentType,
		Confidence:        score,
		CurrentBudget:     ctxMetrics.Budget,
		RecommendedBudget: recommended,
		BudgetDelta:       delta,
		Utilization:       util7,
		StopLoss:          guarded.StopLoss,
		Rationale: rationale.Compose(rationale.Input{
			Focus:          focus,
			Cost28:         cost28,
			Benchmark28:    bench28,
			Utilization7:   util7,
			AdjustmentType: guarded.AdjustmentType,
			Seasonality:    seasonality,
			GuardrailNotes: guarded.Notes,
		}),
		GuardrailNotes: guarded.Notes,
		ScoreDetail:    detail,
		Variant:        variant,
		LogicVersion:   domain.LogicVersion,
	}
}
