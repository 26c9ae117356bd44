package domain

import "strings"

// Focus selects which conversion metric the scoring prioritizes.
type Focus string

const (
	FocusDemo       Focus = "demo"
	FocusEnrollment Focus = "enrollment"
	FocusHybrid     Focus = "hybrid"
)

// ParseFocus maps a request string to a Focus. Unknown values fall back
// to demo focus rather than failing the request.
func ParseFocus(s string) Focus {
	switch Focus(strings.ToLower(strings.TrimSpace(s))) {
	case FocusEnrollment:
		return FocusEnrollment
	case FocusHybrid:
		return FocusHybrid
	default:
		return FocusDemo
	}
}

// Variant identifies an experiment weight-table variant.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// ParseVariant maps a request string to a Variant. Unrecognized values
// fall back to variant A's weight tables.
func ParseVariant(s string) Variant {
	if strings.EqualFold(strings.TrimSpace(s), string(VariantB)) {
		return VariantB
	}
	return VariantA
}

// Action is the recommended move for a campaign.
type Action string

const (
	ActionScale   Action = "Scale"
	ActionHold    Action = "Hold"
	ActionWatch   Action = "Watch"
	ActionDescale Action = "Descale"
)

// AdjustmentType says which lever the recommendation targets.
type AdjustmentType string

const (
	AdjustBudget AdjustmentType = "Budget"
	AdjustTCPA   AdjustmentType = "TCPA"
)
