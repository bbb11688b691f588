package models

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Product name is required"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Time   string `json:"time" example:"2025-01-01T00:00:00Z"`
}
