package dto

// SummarizeRequest represents the body of a summarize call
type SummarizeRequest struct {
	VideoURL string `json:"video_url"`
}

// SummaryResponse represents a successful summarize result
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse represents the error body returned on any failure
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse represents the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}
