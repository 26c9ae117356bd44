// Package aggregate partitions dated performance rows into the fixed rolling
// windows and sums counters per campaign. All downstream scoring operates on
// the maps produced here.
package aggregate

import (
	"time"

	"campaign-budget-engine/internal/domain"
)

// dateLayouts are the accepted row date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a row or settings date. ok is false when no layout matched.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseRows resolves every row's calendar date. Unparseable dates are coerced
// to now so the row is still counted; with reject set they are dropped instead.
func ParseRows(rows []domain.PerformanceRow, now time.Time, reject bool) []domain.DatedRow {
	out := make([]domain.DatedRow, 0, len(rows))
	for _, r := range rows {
		t, ok := ParseDate(r.Date)
		if !ok {
			if reject {
				continue
			}
			t = now
		}
		out = append(out, domain.DatedRow{Row: r, Date: t, Coerced: !ok})
	}
	return out
}

// Window is an inclusive date range. A zero Window means all-time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls within [Start, End].
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// ResolveEndDate picks the reference end date for all windows: the custom
// range end when given, else the latest row date, else now.
func ResolveEndDate(rows []domain.DatedRow, customEnd *time.Time, now time.Time) time.Time {
	if customEnd != nil {
		return *customEnd
	}
	var latest time.Time
	for _, r := range rows {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	if latest.IsZero() {
		return now
	}
	return latest
}

// Result holds every aggregation the engine needs for one invocation.
type Result struct {
	End           time.Time
	SelectedStart time.Time

	// Fixed maps each scoring window to per-campaign metrics.
	Fixed map[domain.Timeframe]map[string]*domain.CampaignMetrics

	// Selected covers the caller's reporting window; AllTime is the
	// fallback for campaigns with no rows in it.
	Selected map[string]*domain.CampaignMetrics
	AllTime  map[string]*domain.CampaignMetrics
}

// Run partitions rows into the three fixed windows, the selected window and
// the all-time aggregation. customStart overrides the selected window start;
// otherwise it is end minus selectionDays.
func Run(rows []domain.DatedRow, end time.Time, customStart *time.Time, selectionDays int) *Result {
	res := &Result{
		End:   end,
		Fixed: make(map[domain.Timeframe]map[string]*domain.CampaignMetrics, 3),
	}

	for _, tf := range domain.Timeframes() {
		w := Window{Start: end.AddDate(0, 0, -tf.Days()), End: end}
		res.Fixed[tf] = byCampaign(rows, &w)
	}

	selStart := end.AddDate(0, 0, -selectionDays)
	if customStart != nil {
		selStart = *customStart
	}
	res.SelectedStart = selStart
	res.Selected = byCampaign(rows, &Window{Start: selStart, End: end})
	res.AllTime = byCampaign(rows, nil)

	return res
}

// byCampaign groups rows in the window (nil = all rows) by campaign and sums
// counters. Budget, bid strategy and tCPA come from the latest row seen.
func byCampaign(rows []domain.DatedRow, w *Window) map[string]*domain.CampaignMetrics {
	type latest struct {
		date time.Time
		set  bool
	}
	out := make(map[string]*domain.CampaignMetrics)
	last := make(map[string]latest)
	utilSum := make(map[string]float64)

	for _, r := range rows {
		if w != nil && !w.Contains(r.Date) {
			continue
		}
		m, ok := out[r.Row.Campaign]
		if !ok {
			m = &domain.CampaignMetrics{Campaign: r.Row.Campaign}
			out[r.Row.Campaign] = m
		}
		m.Rows++
		m.Spend += r.Row.Spend
		m.Leads += r.Row.Leads
		m.Demos += r.Row.Demos
		m.Enrollments += r.Row.Enrollments
		m.Conversions += r.Row.Conversions
		m.Impressions += r.Row.Impressions
		m.Clicks += r.Row.Clicks

		util := r.Row.BudgetUtilization
		if util <= 0 {
			util = domain.SafeDiv(r.Row.Spend, r.Row.Budget)
		}
		utilSum[r.Row.Campaign] += util

		if l := last[r.Row.Campaign]; !l.set || !r.Date.Before(l.date) {
			m.Budget = r.Row.Budget
			m.BidStrategy = r.Row.BidStrategy
			m.TCPA = r.Row.TCPA
			last[r.Row.Campaign] = latest{date: r.Date, set: true}
		}
	}

	for name, m := range out {
		m.Utilization = domain.SafeDiv(utilSum[name], float64(m.Rows))
		m.CostPerDemo = domain.SafeDiv(m.Spend, m.Demos)
		m.CostPerEnrollment = domain.SafeDiv(m.Spend, m.Enrollments)
	}
	return out
}
