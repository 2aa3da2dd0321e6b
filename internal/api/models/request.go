package models

import "leasescore/internal/model"

// EvaluateRequest is the body of POST /api/v1/evaluate and POST /api/v1/report.
type EvaluateRequest struct {
	Name string           `json:"name,omitempty"`
	Deal model.DealInputs `json:"deal"`
}

// HintsRequest is the body of POST /api/v1/hints. An empty Field returns hints for every field.
type HintsRequest struct {
	Field string           `json:"field,omitempty"`
	Deal  model.DealInputs `json:"deal"`
}
