// Package scoring converts per-window cost metrics into the 0-100
// confidence score that drives the recommended action.
package scoring

import (
	"math"

	"campaign-budget-engine/internal/domain"
)

// NormalizeScore converts a campaign cost into a 0-100 efficiency score
// relative to the account benchmark. Cheaper than average scores above
// 50 once the ratio passes half the ceiling. No data means no credit:
// a zero cost or zero benchmark scores 0, not a neutral 50.
func NormalizeScore(cost, bench, ceiling float64) int {
	if cost <= 0 || bench <= 0 || ceiling <= 0 {
		return 0
	}
	ratio := bench / cost
	if ratio > ceiling {
		ratio = ceiling
	}
	if ratio < 0 {
		ratio = 0
	}
	return clampScore(math.Round(ratio / ceiling * 100))
}

// Score combines per-timeframe demo and enrollment scores into the final
// confidence score using the variant's weight tables and the caller's focus,
// then applies the seasonality multiplier. A seasonality of 0 is treated as
// the 1.0 default. Also returns the per-timeframe score detail.
func Score(
	metrics map[domain.Timeframe]*domain.CampaignMetrics,
	benchmarks map[domain.Timeframe]domain.Benchmark,
	focus domain.Focus,
	variant domain.Variant,
	seasonality float64,
	ceiling float64,
) (int, []domain.TimeframeScore) {
	weights := WeightsFor(variant)

	var totalWeighted, totalWeight float64
	detail := make([]domain.TimeframeScore, 0, 3)

	for _, tf := range domain.Timeframes() {
		var demoScore, enrollScore int
		if m := metrics[tf]; m != nil {
			b := benchmarks[tf]
			demoScore = NormalizeScore(m.CostPerDemo, b.CostPerDemo, ceiling)
			enrollScore = NormalizeScore(m.CostPerEnrollment, b.CostPerEnrollment, ceiling)
		}

		var weight, score float64
		switch focus {
		case domain.FocusEnrollment:
			weight = weights.Enrollment[tf]
			score = float64(enrollScore)
		case domain.FocusHybrid:
			// 50/50 blend per window, weighted by the demo table.
			weight = weights.Demo[tf]
			score = (float64(demoScore) + float64(enrollScore)) / 2
		default:
			weight = weights.Demo[tf]
			score = float64(demoScore)
		}

		totalWeighted += score * weight
		totalWeight += weight

		detail = append(detail, domain.TimeframeScore{
			Timeframe:       tf,
			DemoScore:       demoScore,
			EnrollmentScore: enrollScore,
			Weight:          weight,
		})
	}

	if totalWeight == 0 {
		return 0, detail
	}

	raw := totalWeighted / totalWeight
	if seasonality > 0 {
		raw *= seasonality
	}
	return clampScore(math.Round(raw)), detail
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
