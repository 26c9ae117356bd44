// Package reporting renders a completed engine run as a human-readable
// report for offline use.
package reporting

import (
	"time"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/engine"
)

// Report is the offline view of one engine run.
type Report struct {
	// Metadata
	GeneratedAt  time.Time
	Focus        domain.Focus
	Variant      domain.Variant
	LogicVersion string
	RangeStart   time.Time
	RangeEnd     time.Time

	// Data Summary
	CampaignCount int
	RowCount      int

	// Action band counts
	ScaleCount   int
	HoldCount    int
	WatchCount   int
	DescaleCount int
	StopLossHits int

	// Per-campaign decisions, sorted by campaign name
	Recommendations []domain.Recommendation
}

// Build assembles a Report from an engine result.
func Build(res *engine.Result, generatedAt time.Time) *Report {
	r := &Report{
		GeneratedAt:     generatedAt,
		Focus:           res.Focus,
		Variant:         res.Variant,
		LogicVersion:    domain.LogicVersion,
		RangeStart:      res.RangeStart,
		RangeEnd:        res.RangeEnd,
		CampaignCount:   res.CampaignCount,
		RowCount:        res.RowCount,
		Recommendations: res.Recommendations,
	}

	for _, rec := range res.Recommendations {
		switch rec.Action {
		case domain.ActionScale:
			r.ScaleCount++
		case domain.ActionHold:
			r.HoldCount++
		case domain.ActionWatch:
			r.WatchCount++
		case domain.ActionDescale:
			r.DescaleCount++
		}
		if rec.StopLoss {
			r.StopLossHits++
		}
	}

	return r
}
