package policy

import (
	"campaign-budget-engine/internal/config"
	"campaign-budget-engine/internal/domain"
)

// BudgetDelta translates the action into a recommended budget. Scale steps
// up, Descale steps down, Hold and Watch keep the current budget. The
// recommendation is clamped to the campaign's [minBudget, maxBudget] bounds
// (maxBudget 0 = unbounded) and the returned delta reflects the clamped value.
func BudgetDelta(cfg config.EngineConfig, action domain.Action, current float64, settings domain.CampaignSettings) (recommended, delta float64) {
	step := cfg.StepPercent()

	recommended = current
	switch action {
	case domain.ActionScale:
		recommended = current + current*step
	case domain.ActionDescale:
		recommended = current - current*step
	}

	if recommended < settings.MinBudget {
		recommended = settings.MinBudget
	}
	if settings.MaxBudget > 0 && recommended > settings.MaxBudget {
		recommended = settings.MaxBudget
	}

	return recommended, recommended - current
}
