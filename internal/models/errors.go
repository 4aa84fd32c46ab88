package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: no content and no image supplied. Handled locally,
	// never reaches the network.
	ErrValidation = errors.New("please provide text, an image, or both")

	// ErrAuthRequired: the backend answered 401.
	ErrAuthRequired = errors.New("authentication required")

	// ErrServerReported: a 2xx response carried an error field.
	ErrServerReported = errors.New("server reported error")

	// ErrParse: response body was not valid JSON.
	ErrParse = errors.New("malformed response body")
)

// HTTPError is a non-2xx response from the moderation backend.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("moderation backend returned status %d", e.StatusCode)
}

// Is maps 401 onto ErrAuthRequired so callers can special-case the
// auth message without a type assertion.
func (e *HTTPError) Is(target error) bool {
	return target == ErrAuthRequired && e.StatusCode == 401
}
