package domain

import "time"

// PerformanceRow is one day of reported performance for one campaign,
// as received in the request payload. Date stays a string at this layer;
// parsing policy (coerce vs reject) is applied by the aggregator.
type PerformanceRow struct {
	Date              string  `json:"date"`
	Campaign          string  `json:"campaign"`
	Spend             float64 `json:"spend"`
	Leads             float64 `json:"leads"`
	Demos             float64 `json:"demos"`
	Enrollments       float64 `json:"enrollments"`
	Conversions       float64 `json:"conversions"`
	Impressions       float64 `json:"impressions"`
	Clicks            float64 `json:"clicks"`
	Budget            float64 `json:"budget"`
	BidStrategy       string  `json:"bidStrategy"`
	TCPA              float64 `json:"tcpa"`
	BudgetUtilization float64 `json:"budgetUtilization,omitempty"`
}

// DatedRow pairs a raw row with its resolved calendar date.
// Coerced marks rows whose date failed to parse and was replaced with
// the engine clock's now.
type DatedRow struct {
	Row     PerformanceRow
	Date    time.Time
	Coerced bool
}
