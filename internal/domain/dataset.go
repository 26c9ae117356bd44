package domain

import "time"

// Dataset is the immutable record of one engine invocation.
// Corresponds to the datasets table in PostgreSQL.
type Dataset struct {
	DatasetID     string // PRIMARY KEY, uuid
	UserID        string // resolved identity, empty for anonymous runs
	FileName      string
	FileURL       string
	Focus         Focus
	TimeframeDays int
	Seasonality   float64
	Guardrails    []byte // merged guardrail config, JSON
	CampaignCount int
	RowCount      int
	RangeStart    time.Time
	RangeEnd      time.Time
	LogicVersion  string
	Variant       Variant
	Payload       []byte // full request/response payload, JSON
	CreatedAt     time.Time
}

// StoredRecommendation is the normalized per-campaign decision row,
// foreign-keyed to its dataset. Corresponds to the recommendations table.
type StoredRecommendation struct {
	RecommendationID string `json:"recommendationId"` // PRIMARY KEY, deterministic hash
	DatasetID        string `json:"datasetId"`
	Recommendation
	CreatedAt time.Time `json:"createdAt"`
}
