package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeRecommendationID computes a deterministic recommendation_id using SHA256.
// Formula: SHA256(dataset_id|campaign|logic_version|variant)
// Returns hex-encoded hash (64 characters).
func ComputeRecommendationID(
	datasetID string,
	campaign string,
	logicVersion string,
	variant string,
) string {
	data := fmt.Sprintf("%s|%s|%s|%s",
		datasetID,
		campaign,
		logicVersion,
		variant,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
