// Package config holds the engine's scoring and guardrail configuration.
// The config is an immutable value built once per invocation; caller
// overrides are applied through a pure merge, never by mutating defaults.
package config

// EngineConfig is the full set of tunables for one engine run.
type EngineConfig struct {
	// Guardrails
	MinDaysBetweenChanges int     // cooldown window for budget changes
	StopLossSpend         float64 // 7-day spend that triggers the stop-loss flag at zero conversions
	UtilizationThreshold  float64 // below this 7-day utilization, tCPA strategies get a TCPA adjustment

	// Budget stepping
	DefaultStepPercent float64
	MaxStepPercent     float64

	// Scoring
	MaxOutperformance float64 // ceiling for benchmark/cost before scaling to 0-100

	// RejectBadDates drops rows with unparseable dates instead of
	// coercing them to now. Default false keeps the legacy coercion.
	RejectBadDates bool
}

// GuardrailOverrides is the caller-supplied partial override of the
// defaults. Nil fields keep the default value.
type GuardrailOverrides struct {
	MinDaysBetweenChanges *int     `json:"minDaysBetweenChanges,omitempty"`
	StopLossSpend         *float64 `json:"stopLossSpend,omitempty"`
	UtilizationThreshold  *float64 `json:"utilizationThreshold,omitempty"`
	DefaultStepPercent    *float64 `json:"defaultStepPercent,omitempty"`
	MaxStepPercent        *float64 `json:"maxStepPercent,omitempty"`
	MaxOutperformance     *float64 `json:"maxOutperformance,omitempty"`
	RejectBadDates        *bool    `json:"rejectBadDates,omitempty"`
}

// Default returns the stock engine configuration.
func Default() EngineConfig {
	return EngineConfig{
		MinDaysBetweenChanges: 7,
		StopLossSpend:         1500,
		UtilizationThreshold:  0.75,
		DefaultStepPercent:    0.10,
		MaxStepPercent:        0.15,
		MaxOutperformance:     2.0,
	}
}

// Merge applies overrides on top of base and returns the result.
// Neither input is modified.
func Merge(base EngineConfig, o *GuardrailOverrides) EngineConfig {
	if o == nil {
		return base
	}
	out := base
	if o.MinDaysBetweenChanges != nil {
		out.MinDaysBetweenChanges = *o.MinDaysBetweenChanges
	}
	if o.StopLossSpend != nil {
		out.StopLossSpend = *o.StopLossSpend
	}
	if o.UtilizationThreshold != nil {
		out.UtilizationThreshold = *o.UtilizationThreshold
	}
	if o.DefaultStepPercent != nil {
		out.DefaultStepPercent = *o.DefaultStepPercent
	}
	if o.MaxStepPercent != nil {
		out.MaxStepPercent = *o.MaxStepPercent
	}
	if o.MaxOutperformance != nil {
		out.MaxOutperformance = *o.MaxOutperformance
	}
	if o.RejectBadDates != nil {
		out.RejectBadDates = *o.RejectBadDates
	}
	return out
}

// StepPercent resolves the effective budget step, capped at MaxStepPercent.
func (c EngineConfig) StepPercent() float64 {
	if c.DefaultStepPercent > c.MaxStepPercent {
		return c.MaxStepPercent
	}
	return c.DefaultStepPercent
}
