package models

import (
	"time"

	"cng-analyzer/internal/analysis"
	"cng-analyzer/internal/chart"
	"cng-analyzer/internal/model"
	"cng-analyzer/internal/report"
)

// AnalyzeResponse represents the response from an analysis run
type AnalyzeResponse struct {
	ID        string          `json:"id"`
	ExpiresAt time.Time       `json:"expires_at"`
	Scenario  model.Scenario  `json:"scenario"`
	Result    model.Result    `json:"result"`
	Payback   string          `json:"payback"` // formatted months or "No Payback (No Savings)"
	Metrics   []report.Metric `json:"metrics"`
	Advice    report.Advice   `json:"advice"`
	Charts    []chart.Config  `json:"charts"`
	Report    string          `json:"report"` // plain-text report
	Logged    bool            `json:"logged"`
	Links     ReportLinks     `json:"links"`
}

// ReportLinks points at the downloads for a stored analysis
type ReportLinks struct {
	PDF    string            `json:"pdf"`
	XLSX   string            `json:"xlsx"`
	Charts map[string]string `json:"charts"`
}

// CompareResponse represents the response from ranking scenarios
type CompareResponse struct {
	Rankings []analysis.Ranked `json:"rankings"`
	Summary  analysis.Summary  `json:"summary"`
}

// DefaultsResponse lists the starting inputs and recommendation thresholds
type DefaultsResponse struct {
	Scenario   model.Scenario `json:"scenario"`
	Thresholds []TierInfo     `json:"thresholds"`
}

// TierInfo describes one recommendation tier
type TierInfo struct {
	Tier        model.Recommendation `json:"tier"`
	Description string               `json:"description"`
	MaxMonths   *float64             `json:"max_months,omitempty"`
}

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
