package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse wraps data into a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// OutcomeResponse reports whether an update or delete touched a row
type OutcomeResponse struct {
	Changed bool `json:"changed"`
}

// AverageResponse carries one of the three average grades
type AverageResponse struct {
	Subject  string  `json:"subject" example:"student"`
	ID       int64   `json:"id" example:"1"`
	CourseID *int64  `json:"courseId,omitempty"`
	Average  float64 `json:"average" example:"95.5"`
}
