package models

import (
	"time"

	"leasescore/internal/hints"
	"leasescore/internal/model"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeStoreError     = "STORE_ERROR"
	CodeRenderError    = "RENDER_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ResultResponse is a stored evaluation.
type ResultResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	Result    *model.EvaluationResult `json:"result"`
}

type HintsResponse struct {
	Hints []hints.Hint `json:"hints"`
}

type ConvertResponse struct {
	MoneyFactor float64 `json:"money_factor"`
	APRPercent  float64 `json:"apr_percent"`
}

// BenchmarksResponse describes the fixed market reference and the thresholds deals are scored
// against.
type BenchmarksResponse struct {
	Market     model.MarketReference `json:"market"`
	Thresholds map[string]float64    `json:"thresholds"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
