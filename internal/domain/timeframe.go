package domain

// Timeframe identifies one of the fixed rolling scoring windows.
type Timeframe string

const (
	TimeframeD7  Timeframe = "d7"
	TimeframeD28 Timeframe = "d28"
	TimeframeD90 Timeframe = "d90"
)

// Timeframes returns the fixed windows in ascending order of length.
// The order is load-bearing: scoring and score detail iterate it.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeD7, TimeframeD28, TimeframeD90}
}

// Days returns the window length in days. Unknown timeframes return 0.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeD7:
		return 7
	case TimeframeD28:
		return 28
	case TimeframeD90:
		return 90
	}
	return 0
}
