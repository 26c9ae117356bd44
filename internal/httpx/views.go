package httpx

import (
	"encoding/json"
	"time"

	"campaign-budget-engine/internal/domain"
)

// datasetJSON is the wire shape for a persisted dataset. Guardrails and
// payload are stored as JSON and surfaced verbatim.
type datasetJSON struct {
	DatasetID     string          `json:"datasetId"`
	UserID        string          `json:"userId"`
	FileName      string          `json:"fileName,omitempty"`
	FileURL       string          `json:"fileUrl,omitempty"`
	Focus         domain.Focus    `json:"focus"`
	TimeframeDays int             `json:"timeframeDays"`
	Seasonality   float64         `json:"seasonality"`
	Guardrails    json.RawMessage `json:"guardrails,omitempty"`
	CampaignCount int             `json:"campaignCount"`
	RowCount      int             `json:"rowCount"`
	RangeStart    time.Time       `json:"rangeStart"`
	RangeEnd      time.Time       `json:"rangeEnd"`
	LogicVersion  string          `json:"logicVersion"`
	Variant       domain.Variant  `json:"experimentVariant"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func datasetView(d *domain.Dataset) datasetJSON {
	return datasetJSON{
		DatasetID:     d.DatasetID,
		UserID:        d.UserID,
		FileName:      d.FileName,
		FileURL:       d.FileURL,
		Focus:         d.Focus,
		TimeframeDays: d.TimeframeDays,
		Seasonality:   d.Seasonality,
		Guardrails:    json.RawMessage(d.Guardrails),
		CampaignCount: d.CampaignCount,
		RowCount:      d.RowCount,
		RangeStart:    d.RangeStart,
		RangeEnd:      d.RangeEnd,
		LogicVersion:  d.LogicVersion,
		Variant:       d.Variant,
		Payload:       json.RawMessage(d.Payload),
		CreatedAt:     d.CreatedAt,
	}
}
