package scoring

import (
	"testing"

	"campaign-budget-engine/internal/domain"
)

func TestNormalizeScore_BenchmarkRatio(t *testing.T) {
	// Campaign at $140 vs $200 benchmark: ratio 1.43, ceiling 2.0 → 71
	if got := NormalizeScore(140, 200, 2.0); got != 71 {
		t.Errorf("expected 71, got %d", got)
	}
	// At benchmark: ratio 1.0 → 50
	if got := NormalizeScore(200, 200, 2.0); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
	// Far cheaper than benchmark clamps at the ceiling → 100
	if got := NormalizeScore(10, 200, 2.0); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestNormalizeScore_ZeroIsNoCredit(t *testing.T) {
	if got := NormalizeScore(0, 200, 2.0); got != 0 {
		t.Errorf("expected 0 for zero cost, got %d", got)
	}
	if got := NormalizeScore(140, 0, 2.0); got != 0 {
		t.Errorf("expected 0 for zero benchmark, got %d", got)
	}
}

func TestNormalizeScore_Bounds(t *testing.T) {
	costs := []float64{0, 0.01, 1, 50, 140, 200, 1e6}
	benches := []float64{0, 1, 200, 1e6}
	for _, c := range costs {
		for _, b := range benches {
			got := NormalizeScore(c, b, 2.0)
			if got < 0 || got > 100 {
				t.Fatalf("score out of bounds for cost=%f bench=%f: %d", c, b, got)
			}
		}
	}
}

func TestWeightsFor_UnknownVariantFallsBackToA(t *testing.T) {
	a := WeightsFor(domain.VariantA)
	unknown := WeightsFor(domain.Variant("Z"))
	if unknown.Demo[domain.TimeframeD28] != a.Demo[domain.TimeframeD28] {
		t.Error("unknown variant must use variant A weights")
	}
}

func TestWeightTables_SumToOne(t *testing.T) {
	for _, v := range []domain.Variant{domain.VariantA, domain.VariantB} {
		w := WeightsFor(v)
		for name, table := range map[string]WeightTable{"demo": w.Demo, "enrollment": w.Enrollment} {
			sum := 0.0
			for _, tf := range domain.Timeframes() {
				sum += table[tf]
			}
			if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("variant %s %s weights sum to %f, want 1.0", v, name, sum)
			}
		}
	}
}

func singleWindowInputs(costPerDemo, costPerEnroll float64) (map[domain.Timeframe]*domain.CampaignMetrics, map[domain.Timeframe]domain.Benchmark) {
	metrics := map[domain.Timeframe]*domain.CampaignMetrics{
		domain.TimeframeD28: {CostPerDemo: costPerDemo, CostPerEnrollment: costPerEnroll},
	}
	benchmarks := map[domain.Timeframe]domain.Benchmark{
		domain.TimeframeD28: {CostPerDemo: 200, CostPerEnrollment: 500},
	}
	return metrics, benchmarks
}

func TestScore_DemoFocusSingleWindow(t *testing.T) {
	metrics, benchmarks := singleWindowInputs(140, 0)

	// Only d28 has data: d28 demo score 71 with weight 0.5; d7/d90 score 0
	// with weights 0.2/0.3. Weighted: 71*0.5/1.0 = 35.5 → 36.
	got, detail := Score(metrics, benchmarks, domain.FocusDemo, domain.VariantA, 1.0, 2.0)
	if got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
	if len(detail) != 3 {
		t.Fatalf("expected detail for 3 windows, got %d", len(detail))
	}
	if detail[1].Timeframe != domain.TimeframeD28 || detail[1].DemoScore != 71 {
		t.Errorf("expected d28 demo score 71 in detail, got %+v", detail[1])
	}
}

func TestScore_EnrollmentFocusUsesEnrollmentTable(t *testing.T) {
	metrics, benchmarks := singleWindowInputs(0, 250)

	// Enrollment score at d28: ratio 500/250=2.0 → 100, weight 0.45.
	// Weighted: 100*0.45/1.0 = 45.
	got, _ := Score(metrics, benchmarks, domain.FocusEnrollment, domain.VariantA, 1.0, 2.0)
	if got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
}

func TestScore_HybridBlendsAndUsesDemoWeights(t *testing.T) {
	metrics, benchmarks := singleWindowInputs(140, 250)

	// d28: demo 71, enrollment 100, blend 85.5, demo weight 0.5.
	// Weighted: 85.5*0.5/1.0 = 42.75 → 43.
	got, _ := Score(metrics, benchmarks, domain.FocusHybrid, domain.VariantA, 1.0, 2.0)
	if got != 43 {
		t.Errorf("expected 43, got %d", got)
	}
}

func TestScore_SeasonalityMultiplier(t *testing.T) {
	metrics, benchmarks := singleWindowInputs(140, 0)

	// Raw 35.5, multiplier 1.2 → 42.6 → 43.
	got, _ := Score(metrics, benchmarks, domain.FocusDemo, domain.VariantA, 1.2, 2.0)
	if got != 43 {
		t.Errorf("expected 43, got %d", got)
	}

	// Zero multiplier treated as the 1.0 default.
	got, _ = Score(metrics, benchmarks, domain.FocusDemo, domain.VariantA, 0, 2.0)
	if got != 36 {
		t.Errorf("expected 36 with default multiplier, got %d", got)
	}
}

func TestScore_ClampedToHundred(t *testing.T) {
	metrics := map[domain.Timeframe]*domain.CampaignMetrics{
		domain.TimeframeD7:  {CostPerDemo: 10},
		domain.TimeframeD28: {CostPerDemo: 10},
		domain.TimeframeD90: {CostPerDemo: 10},
	}
	benchmarks := map[domain.Timeframe]domain.Benchmark{
		domain.TimeframeD7:  {CostPerDemo: 200},
		domain.TimeframeD28: {CostPerDemo: 200},
		domain.TimeframeD90: {CostPerDemo: 200},
	}

	// Every window scores 100; a large seasonality must still clamp.
	got, _ := Score(metrics, benchmarks, domain.FocusDemo, domain.VariantA, 3.0, 2.0)
	if got != 100 {
		t.Errorf("expected clamp at 100, got %d", got)
	}
}

func TestScore_NoDataYieldsZero(t *testing.T) {
	got, detail := Score(nil, nil, domain.FocusDemo, domain.VariantA, 1.0, 2.0)
	if got != 0 {
		t.Errorf("expected 0 for no data, got %d", got)
	}
	for _, d := range detail {
		if d.DemoScore != 0 || d.EnrollmentScore != 0 {
			t.Errorf("expected zero scores in detail, got %+v", d)
		}
	}
}
