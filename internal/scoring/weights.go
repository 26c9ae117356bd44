package scoring

import "campaign-budget-engine/internal/domain"

// WeightTable maps each fixed timeframe to its contribution weight.
type WeightTable map[domain.Timeframe]float64

// VariantWeights is the full weight configuration for one experiment variant.
// Hybrid focus reuses the Demo table for its timeframe weighting; there is
// no dedicated hybrid table.
type VariantWeights struct {
	Demo       WeightTable
	Enrollment WeightTable
}

var variantWeights = map[domain.Variant]VariantWeights{
	domain.VariantA: {
		Demo: WeightTable{
			domain.TimeframeD7:  0.2,
			domain.TimeframeD28: 0.5,
			domain.TimeframeD90: 0.3,
		},
		Enrollment: WeightTable{
			domain.TimeframeD7:  0.15,
			domain.TimeframeD28: 0.45,
			domain.TimeframeD90: 0.4,
		},
	},
	// Variant B shifts weight toward the short window to react faster.
	domain.VariantB: {
		Demo: WeightTable{
			domain.TimeframeD7:  0.4,
			domain.TimeframeD28: 0.4,
			domain.TimeframeD90: 0.2,
		},
		Enrollment: WeightTable{
			domain.TimeframeD7:  0.3,
			domain.TimeframeD28: 0.5,
			domain.TimeframeD90: 0.2,
		},
	},
}

// WeightsFor returns the weight tables for a variant. domain.ParseVariant
// already collapses unknown inputs to variant A, so lookup cannot miss;
// the fallback here guards direct construction of Variant values.
func WeightsFor(v domain.Variant) VariantWeights {
	if w, ok := variantWeights[v]; ok {
		return w
	}
	return variantWeights[domain.VariantA]
}
