package domain

// CampaignMetrics holds summed counters for one campaign within one window.
// Budget, BidStrategy and TCPA come from the latest row in the window.
// Cost ratios follow the engine-wide rule: zero denominator yields 0.
type CampaignMetrics struct {
	Campaign    string
	Rows        int
	Spend       float64
	Leads       float64
	Demos       float64
	Enrollments float64
	Conversions float64
	Impressions float64
	Clicks      float64

	Budget      float64
	BidStrategy string
	TCPA        float64

	// Utilization is the mean of per-row budget utilization; rows without a
	// reported ratio contribute spend/budget instead.
	Utilization float64

	CostPerDemo       float64
	CostPerEnrollment float64
}

// Benchmark is the account-wide cost baseline for one window,
// computed from totals across all campaigns.
type Benchmark struct {
	Timeframe         Timeframe
	Spend             float64
	Demos             float64
	Enrollments       float64
	CostPerDemo       float64
	CostPerEnrollment float64
}

// SafeDiv implements the engine-wide ratio rule: a zero or negative
// denominator yields 0 instead of Inf/NaN.
func SafeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
