package dto

import "time"

// APIResponse is the envelope every endpoint returns. Exactly one of
// Data and Error is set.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps payload data in the standard envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewAPIErrorResponse wraps an error detail in the standard envelope
func NewAPIErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}
