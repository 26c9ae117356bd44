package policy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"campaign-budget-engine/internal/aggregate"
	"campaign-budget-engine/internal/config"
	"campaign-budget-engine/internal/domain"
)

// GuardrailInput is everything the safety policies look at for one campaign.
type GuardrailInput struct {
	Action       domain.Action
	BidStrategy  string
	Utilization7 float64 // 7-day budget utilization
	Spend7       float64
	Conversions7 float64
	LastChange   string // last budget change date, empty = never
	End          time.Time
}

// GuardrailResult is the (possibly overridden) decision plus annotations.
type GuardrailResult struct {
	Action         domain.Action
	AdjustmentType domain.AdjustmentType
	StopLoss       bool
	Notes          []string
}

// Apply evaluates cooldown, stop-loss and the utilization-based adjustment
// type. Cooldown is the only policy that overrides the action; stop-loss is
// advisory and only flags.
func Apply(cfg config.EngineConfig, in GuardrailInput) GuardrailResult {
	res := GuardrailResult{
		Action:         in.Action,
		AdjustmentType: domain.AdjustBudget,
	}

	if in.LastChange != "" {
		if last, ok := aggregate.ParseDate(in.LastChange); ok {
			days := int(math.Floor(in.End.Sub(last).Hours() / 24))
			if days < cfg.MinDaysBetweenChanges {
				res.Action = domain.ActionHold
				res.Notes = append(res.Notes, fmt.Sprintf(
					"budget changed %d day(s) ago; holding until %d-day cooldown elapses",
					days, cfg.MinDaysBetweenChanges))
			}
		}
	}

	if in.Spend7 > cfg.StopLossSpend && in.Conversions7 == 0 {
		res.StopLoss = true
		res.Notes = append(res.Notes, fmt.Sprintf(
			"stop-loss: 7-day spend %.2f with zero conversions exceeds threshold %.2f",
			in.Spend7, cfg.StopLossSpend))
	}

	if strings.Contains(strings.ToLower(in.BidStrategy), "tcpa") &&
		in.Utilization7 < cfg.UtilizationThreshold {
		res.AdjustmentType = domain.AdjustTCPA
	}

	return res
}
