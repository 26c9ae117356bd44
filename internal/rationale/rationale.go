// Package rationale renders the human-readable summary attached to each
// recommendation.
package rationale

import (
	"fmt"
	"math"
	"strings"

	"campaign-budget-engine/internal/domain"
)

// PercentDiff is the rounded percentage difference of actual vs benchmark:
// (actual/benchmark - 1) * 100. A zero benchmark yields 0.
func PercentDiff(actual, bench float64) int {
	if bench == 0 {
		return 0
	}
	return int(math.Round((actual/bench - 1) * 100))
}

// Input carries everything the composer needs for one campaign.
type Input struct {
	Focus          domain.Focus
	Cost28         float64 // 28-day cost for the active focus metric
	Benchmark28    float64
	Utilization7   float64
	AdjustmentType domain.AdjustmentType
	Seasonality    float64
	GuardrailNotes []string
}

// Compose concatenates the efficiency comparison, the utilization sentence,
// an optional seasonality note and all guardrail notes.
func Compose(in Input) string {
	parts := make([]string, 0, 4+len(in.GuardrailNotes))

	metric := focusMetricLabel(in.Focus)
	if in.Benchmark28 == 0 || in.Cost28 == 0 {
		parts = append(parts, fmt.Sprintf("No 28-day %s data to compare against the account benchmark.", metric))
	} else {
		diff := PercentDiff(in.Cost28, in.Benchmark28)
		switch {
		case diff < 0:
			parts = append(parts, fmt.Sprintf("28-day %s is %d%% below the account benchmark.", metric, -diff))
		case diff > 0:
			parts = append(parts, fmt.Sprintf("28-day %s is %d%% above the account benchmark.", metric, diff))
		default:
			parts = append(parts, fmt.Sprintf("28-day %s is in line with the account benchmark.", metric))
		}
	}

	utilPct := int(math.Round(in.Utilization7 * 100))
	if in.AdjustmentType == domain.AdjustTCPA {
		parts = append(parts, fmt.Sprintf("7-day budget utilization at %d%% is low for a tCPA strategy; adjusting the tCPA target instead of the budget.", utilPct))
	} else {
		parts = append(parts, fmt.Sprintf("7-day budget utilization at %d%% supports a budget adjustment.", utilPct))
	}

	if in.Seasonality > 0 && in.Seasonality != 1.0 {
		parts = append(parts, fmt.Sprintf("Seasonality multiplier of %.2f applied to the score.", in.Seasonality))
	}

	parts = append(parts, in.GuardrailNotes...)

	return strings.Join(parts, " ")
}

func focusMetricLabel(f domain.Focus) string {
	switch f {
	case domain.FocusEnrollment:
		return "cost per enrollment"
	case domain.FocusHybrid:
		// Hybrid leans on the demo metric for the headline comparison,
		// mirroring its use of the demo weight table.
		return "cost per demo"
	default:
		return "cost per demo"
	}
}
