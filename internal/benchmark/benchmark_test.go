package benchmark

import (
	"testing"

	"campaign-budget-engine/internal/domain"
)

func TestCompute_AccountWideTotals(t *testing.T) {
	fixed := map[domain.Timeframe]map[string]*domain.CampaignMetrics{
		domain.TimeframeD28: {
			"a": {Campaign: "a", Spend: 2800, Demos: 20, Enrollments: 5},
			"b": {Campaign: "b", Spend: 7200, Demos: 30, Enrollments: 15},
		},
	}

	out := Compute(fixed)

	b := out[domain.TimeframeD28]
	if b.Spend != 10000 {
		t.Errorf("expected total spend 10000, got %f", b.Spend)
	}
	if b.CostPerDemo != 200 {
		t.Errorf("expected account costPerDemo 200, got %f", b.CostPerDemo)
	}
	if b.CostPerEnrollment != 500 {
		t.Errorf("expected account costPerEnrollment 500, got %f", b.CostPerEnrollment)
	}
}

func TestCompute_ZeroTotalsYieldZeroCosts(t *testing.T) {
	fixed := map[domain.Timeframe]map[string]*domain.CampaignMetrics{
		domain.TimeframeD7: {
			"a": {Campaign: "a", Spend: 100, Demos: 0, Enrollments: 0},
		},
		domain.TimeframeD90: {},
	}

	out := Compute(fixed)

	if b := out[domain.TimeframeD7]; b.CostPerDemo != 0 || b.CostPerEnrollment != 0 {
		t.Errorf("expected zero costs at zero conversions, got %+v", b)
	}
	if b := out[domain.TimeframeD90]; b.Spend != 0 || b.CostPerDemo != 0 {
		t.Errorf("expected empty window benchmark to be zero, got %+v", b)
	}
}
