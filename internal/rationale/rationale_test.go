package rationale

import (
	"strings"
	"testing"

	"campaign-budget-engine/internal/domain"
)

func TestPercentDiff(t *testing.T) {
	cases := []struct {
		actual, bench float64
		want          int
	}{
		{140, 200, -30},
		{260, 200, 30},
		{200, 200, 0},
		{150, 0, 0}, // zero benchmark rule
		{205, 200, 3},
	}
	for _, c := range cases {
		if got := PercentDiff(c.actual, c.bench); got != c.want {
			t.Errorf("PercentDiff(%f, %f) = %d, want %d", c.actual, c.bench, got, c.want)
		}
	}
}

func TestCompose_BelowBenchmark(t *testing.T) {
	got := Compose(Input{
		Focus:          domain.FocusDemo,
		Cost28:         140,
		Benchmark28:    200,
		Utilization7:   0.88,
		AdjustmentType: domain.AdjustBudget,
		Seasonality:    1.0,
	})

	if !strings.Contains(got, "cost per demo is 30% below") {
		t.Errorf("missing efficiency sentence: %q", got)
	}
	if !strings.Contains(got, "88% supports a budget adjustment") {
		t.Errorf("missing utilization sentence: %q", got)
	}
	if strings.Contains(got, "Seasonality") {
		t.Errorf("unexpected seasonality note at 1.0: %q", got)
	}
}

func TestCompose_TCPAAndSeasonality(t *testing.T) {
	got := Compose(Input{
		Focus:          domain.FocusEnrollment,
		Cost28:         600,
		Benchmark28:    500,
		Utilization7:   0.5,
		AdjustmentType: domain.AdjustTCPA,
		Seasonality:    1.2,
		GuardrailNotes: []string{"stop-loss: 7-day spend 2000.00 with zero conversions exceeds threshold 1500.00"},
	})

	if !strings.Contains(got, "cost per enrollment is 20% above") {
		t.Errorf("missing efficiency sentence: %q", got)
	}
	if !strings.Contains(got, "adjusting the tCPA target") {
		t.Errorf("missing tCPA utilization sentence: %q", got)
	}
	if !strings.Contains(got, "multiplier of 1.20") {
		t.Errorf("missing seasonality note: %q", got)
	}
	if !strings.Contains(got, "stop-loss") {
		t.Errorf("guardrail notes must be appended: %q", got)
	}
}

func TestCompose_NoBenchmarkData(t *testing.T) {
	got := Compose(Input{
		Focus:          domain.FocusDemo,
		Cost28:         0,
		Benchmark28:    0,
		AdjustmentType: domain.AdjustBudget,
		Seasonality:    1.0,
	})
	if !strings.Contains(got, "No 28-day cost per demo data") {
		t.Errorf("expected no-data sentence, got %q", got)
	}
}
