// Package benchmark derives the account-wide cost baselines each campaign
// is judged against. The yardstick is the account average for the same
// window, not a fixed external target.
package benchmark

import "campaign-budget-engine/internal/domain"

// Compute sums totals across all campaigns in each fixed window and derives
// account-wide cost per demo and cost per enrollment (zero totals yield 0).
func Compute(fixed map[domain.Timeframe]map[string]*domain.CampaignMetrics) map[domain.Timeframe]domain.Benchmark {
	out := make(map[domain.Timeframe]domain.Benchmark, len(fixed))
	for tf, campaigns := range fixed {
		b := domain.Benchmark{Timeframe: tf}
		for _, m := range campaigns {
			b.Spend += m.Spend
			b.Demos += m.Demos
			b.Enrollments += m.Enrollments
		}
		b.CostPerDemo = domain.SafeDiv(b.Spend, b.Demos)
		b.CostPerEnrollment = domain.SafeDiv(b.Spend, b.Enrollments)
		out[tf] = b
	}
	return out
}
