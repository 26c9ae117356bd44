package idhash

import (
	"testing"
)

func TestComputeRecommendationID(t *testing.T) {
	tests := []struct {
		name         string
		datasetID    string
		campaign     string
		logicVersion string
		variant      string
		wantLen      int // hash length should be 64
	}{
		{
			name:         "variant A recommendation",
			datasetID:    "6f1c9a2e-0d44-4a1b-9c33-8b1f2e7d5a10",
			campaign:     "Brand - Search",
			logicVersion: "v1.4.0",
			variant:      "A",
			wantLen:      64,
		},
		{
			name:         "variant B recommendation",
			datasetID:    "6f1c9a2e-0d44-4a1b-9c33-8b1f2e7d5a10",
			campaign:     "Acquisition - Display",
			logicVersion: "v1.4.0",
			variant:      "B",
			wantLen:      64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRecommendationID(tt.datasetID, tt.campaign, tt.logicVersion, tt.variant)

			if len(got) != tt.wantLen {
				t.Errorf("ComputeRecommendationID() length = %d, want %d", len(got), tt.wantLen)
			}

			// Verify determinism: same inputs should produce same output
			got2 := ComputeRecommendationID(tt.datasetID, tt.campaign, tt.logicVersion, tt.variant)
			if got != got2 {
				t.Errorf("ComputeRecommendationID() not deterministic: %s != %s", got, got2)
			}
		})
	}
}

func TestComputeRecommendationID_DifferentInputs(t *testing.T) {
	base := ComputeRecommendationID("dataset", "campaign", "v1.4.0", "A")

	// Different dataset should produce different hash
	diffDataset := ComputeRecommendationID("other_dataset", "campaign", "v1.4.0", "A")
	if base == diffDataset {
		t.Error("Different dataset should produce different hash")
	}

	// Different campaign should produce different hash
	diffCampaign := ComputeRecommendationID("dataset", "other_campaign", "v1.4.0", "A")
	if base == diffCampaign {
		t.Error("Different campaign should produce different hash")
	}

	// Different logic version should produce different hash
	diffVersion := ComputeRecommendationID("dataset", "campaign", "v2.0.0", "A")
	if base == diffVersion {
		t.Error("Different logic version should produce different hash")
	}

	// Different variant should produce different hash
	diffVariant := ComputeRecommendationID("dataset", "campaign", "v1.4.0", "B")
	if base == diffVariant {
		t.Error("Different variant should produce different hash")
	}
}
