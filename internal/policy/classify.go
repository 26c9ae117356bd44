// Package policy turns a confidence score into a concrete, guard-railed
// budget decision.
package policy

import "campaign-budget-engine/internal/domain"

// band pairs a minimum score with its action. Evaluated top-down,
// first match wins; the 0 floor makes the mapping total.
type band struct {
	min    int
	action domain.Action
}

var bands = []band{
	{80, domain.ActionScale},
	{60, domain.ActionHold},
	{40, domain.ActionWatch},
	{0, domain.ActionDescale},
}

// Classify maps a confidence score to its action band.
func Classify(score int) domain.Action {
	for _, b := range bands {
		if score >= b.min {
			return b.action
		}
	}
	// Scores are clamped to [0,100] upstream; negative input still
	// lands in the lowest band.
	return domain.ActionDescale
}
