package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Budget Recommendations\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Focus: %s | Variant: %s | Logic: %s\n\n", r.Focus, r.Variant, r.LogicVersion))
	sb.WriteString(fmt.Sprintf("Window: %s to %s\n\n",
		r.RangeStart.Format("2006-01-02"), r.RangeEnd.Format("2006-01-02")))

	// Data Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Campaigns | %d |\n", r.CampaignCount))
	sb.WriteString(fmt.Sprintf("| Rows | %d |\n", r.RowCount))
	sb.WriteString(fmt.Sprintf("| Scale | %d |\n", r.ScaleCount))
	sb.WriteString(fmt.Sprintf("| Hold | %d |\n", r.HoldCount))
	sb.WriteString(fmt.Sprintf("| Watch | %d |\n", r.WatchCount))
	sb.WriteString(fmt.Sprintf("| Descale | %d |\n", r.DescaleCount))
	sb.WriteString(fmt.Sprintf("| Stop-loss flags | %d |\n", r.StopLossHits))
	sb.WriteString("\n")

	// Recommendations
	sb.WriteString("## Recommendations\n\n")
	if len(r.Recommendations) > 0 {
		sb.WriteString("| Campaign | Action | Adjust | Confidence | Current | Recommended | Delta | Util(7d) | StopLoss |\n")
		sb.WriteString("|----------|--------|--------|------------|---------|-------------|-------|----------|----------|\n")
		for _, rec := range r.Recommendations {
			stopLoss := ""
			if rec.StopLoss {
				stopLoss = "YES"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %.2f | %.2f | %+.2f | %.0f%% | %s |\n",
				rec.Campaign, rec.Action, rec.AdjustmentType, rec.Confidence,
				rec.CurrentBudget, rec.RecommendedBudget, rec.BudgetDelta,
				rec.Utilization*100, stopLoss))
		}
	} else {
		sb.WriteString("No recommendations produced.\n")
	}
	sb.WriteString("\n")

	// Details
	sb.WriteString("## Details\n\n")
	for _, rec := range r.Recommendations {
		sb.WriteString(fmt.Sprintf("### %s\n\n", rec.Campaign))
		sb.WriteString(rec.Rationale)
		sb.WriteString("\n\n")
		if len(rec.ScoreDetail) > 0 {
			sb.WriteString("| Window | Demo | Enrollment | Weight |\n")
			sb.WriteString("|--------|------|------------|--------|\n")
			for _, d := range rec.ScoreDetail {
				sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.2f |\n",
					d.Timeframe, d.DemoScore, d.EnrollmentScore, d.Weight))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
