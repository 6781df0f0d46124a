package gitmoji

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog downloads.
var (
	// ErrSourceUnavailable is returned when the catalog host cannot be reached.
	ErrSourceUnavailable = errors.New("gitmoji source unavailable")

	// ErrInvalidDocument is returned when a catalog is not valid gitmoji JSON.
	ErrInvalidDocument = errors.New("invalid gitmoji document")
)

// APIError represents an unexpected HTTP status from the catalog host.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gitmoji source error (status %d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
