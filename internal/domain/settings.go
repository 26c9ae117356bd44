package domain

// CampaignSettings carries per-campaign bounds and change history supplied
// by the caller alongside the rows. MaxBudget 0 means unbounded.
type CampaignSettings struct {
	MinBudget float64 `json:"minBudget"`
	MaxBudget float64 `json:"maxBudget"`

	// LastBudgetChangeDate drives the cooldown guardrail.
	// Same accepted layouts as row dates; empty means never changed.
	LastBudgetChangeDate string `json:"lastBudgetChangeDate,omitempty"`
}
