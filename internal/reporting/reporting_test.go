package reporting

import (
	"strings"
	"testing"
	"time"

	"campaign-budget-engine/internal/config"
	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/engine"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		Recommendations: []domain.Recommendation{
			{
				Campaign:          "Acquisition, Display",
				Action:            domain.ActionScale,
				AdjustmentType:    domain.AdjustBudget,
				Confidence:        86,
				CurrentBudget:     200,
				RecommendedBudget: 220,
				BudgetDelta:       20,
				Utilization:       0.92,
				Rationale:         "28-day cost per demo is 30% below the account benchmark.",
				ScoreDetail: []domain.TimeframeScore{
					{Timeframe: domain.TimeframeD7, DemoScore: 80, EnrollmentScore: 70, Weight: 0.2},
					{Timeframe: domain.TimeframeD28, DemoScore: 90, EnrollmentScore: 75, Weight: 0.5},
					{Timeframe: domain.TimeframeD90, DemoScore: 85, EnrollmentScore: 72, Weight: 0.3},
				},
				Variant:      domain.VariantA,
				LogicVersion: domain.LogicVersion,
			},
			{
				Campaign:       "Brand",
				Action:         domain.ActionDescale,
				AdjustmentType: domain.AdjustTCPA,
				Confidence:     22,
				CurrentBudget:  500,
				StopLoss:       true,
				Variant:        domain.VariantA,
				LogicVersion:   domain.LogicVersion,
			},
		},
		Focus:         domain.FocusDemo,
		Variant:       domain.VariantA,
		Config:        config.Default(),
		RangeStart:    time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		RangeEnd:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CampaignCount: 2,
		RowCount:      56,
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	r := Build(sampleResult(), now)

	if r.ScaleCount != 1 || r.DescaleCount != 1 || r.HoldCount != 0 || r.WatchCount != 0 {
		t.Errorf("action counts wrong: scale=%d hold=%d watch=%d descale=%d",
			r.ScaleCount, r.HoldCount, r.WatchCount, r.DescaleCount)
	}
	if r.StopLossHits != 1 {
		t.Errorf("expected 1 stop-loss hit, got %d", r.StopLossHits)
	}
	if r.CampaignCount != 2 || r.RowCount != 56 {
		t.Errorf("summary counts wrong: campaigns=%d rows=%d", r.CampaignCount, r.RowCount)
	}
}

func TestRenderMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	md := RenderMarkdown(Build(sampleResult(), now))

	for _, want := range []string{
		"# Budget Recommendations",
		"Focus: demo | Variant: A",
		"| Campaigns | 2 |",
		"| Acquisition, Display | Scale | Budget | 86 |",
		"| Brand | Descale | TCPA | 22 |",
		"YES",
		"### Acquisition, Display",
		"28-day cost per demo is 30% below the account benchmark.",
		"| d28 | 90 | 75 | 0.50 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	csv := RenderCSV(sampleResult().Recommendations)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "campaign,action,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	// Comma-bearing campaign names must be quoted.
	if !strings.HasPrefix(lines[1], `"Acquisition, Display",Scale,Budget,86,`) {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], ",true,") {
		t.Errorf("stop-loss flag missing from: %s", lines[2])
	}
}
