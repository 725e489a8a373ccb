package services

import (
	"errors"
	"fmt"
)

// NetworkError means the backend request could not complete.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the backend answered with a non-2xx status.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ErrNoOrigin is returned when no backend URL is configured and the request
// carries no origin to resolve against.
var ErrNoOrigin = errors.New("backend URL not configured and request origin unknown")

// FailureMessage renders a backend error for display. HTTP errors keep their
// status code; anything else falls back to the view's own message.
func FailureMessage(fallback string) func(error) string {
	return func(err error) string {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Sprintf("%s (%s)", fallback, httpErr.Error())
		}
		return fallback
	}
}
