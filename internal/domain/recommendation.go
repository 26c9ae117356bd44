package domain

// LogicVersion tags every recommendation and dataset with the scoring
// logic revision that produced it.
const LogicVersion = "v1.4.0"

// TimeframeScore is the per-window score detail attached to a recommendation.
type TimeframeScore struct {
	Timeframe       Timeframe `json:"timeframe"`
	DemoScore       int       `json:"demoScore"`
	EnrollmentScore int       `json:"enrollmentScore"`
	Weight          float64   `json:"weight"`
}

// Recommendation is the engine output for one campaign.
type Recommendation struct {
	Campaign          string           `json:"campaign"`
	Action            Action           `json:"action"`
	AdjustmentType    AdjustmentType   `json:"adjustmentType"`
	Confidence        int              `json:"confidence"`
	CurrentBudget     float64          `json:"currentBudget"`
	RecommendedBudget float64          `json:"recommendedBudget"`
	BudgetDelta       float64          `json:"budgetDelta"`
	Utilization       float64          `json:"utilization"`
	StopLoss          bool             `json:"stopLoss"`
	Rationale         string           `json:"rationale"`
	GuardrailNotes    []string         `json:"guardrailNotes,omitempty"`
	ScoreDetail       []TimeframeScore `json:"scoreDetail"`
	Variant           Variant          `json:"experimentVariant"`
	LogicVersion      string           `json:"logicVersion"`
}
