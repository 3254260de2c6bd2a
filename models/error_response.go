package models

import (
	"net/http"
	"time"
)

// ErrorResponse is the JSON body written for requests rejected before they
// reach an endpoint handler (missing required header, unknown route, ...).
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	Path      string    `json:"path"`
}

// NewErrorResponse fills Error with the reason phrase of status.
func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}
