package reporting

import (
	"fmt"
	"strings"

	"campaign-budget-engine/internal/domain"
)

// RenderCSV renders recommendations as CSV string. Campaign names are
// quoted since they routinely carry commas.
func RenderCSV(recs []domain.Recommendation) string {
	var sb strings.Builder

	// Header
	sb.WriteString("campaign,action,adjustment_type,confidence,current_budget,")
	sb.WriteString("recommended_budget,budget_delta,utilization,stop_loss,")
	sb.WriteString("experiment_variant,logic_version\n")

	// Rows
	for _, r := range recs {
		sb.WriteString(fmt.Sprintf("%q,%s,%s,%d,%.2f,%.2f,%.2f,%.4f,%t,%s,%s\n",
			r.Campaign,
			r.Action,
			r.AdjustmentType,
			r.Confidence,
			r.CurrentBudget,
			r.RecommendedBudget,
			r.BudgetDelta,
			r.Utilization,
			r.StopLoss,
			r.Variant,
			r.LogicVersion,
		))
	}

	return sb.String()
}
