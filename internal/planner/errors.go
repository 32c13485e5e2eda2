package planner

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidRequest is returned before any provider call when the request is unusable.
var ErrInvalidRequest = errors.New("invalid travel request")

// UpstreamError is the single failure class for everything downstream of validation:
// provider errors, empty or withheld replies, and malformed provider output.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to generate travel plan: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// StatusCode is the HTTP status the error is surfaced with.
func (e *UpstreamError) StatusCode() int { return http.StatusServiceUnavailable }

// Detail is the human readable message returned to the caller.
func (e *UpstreamError) Detail() string { return e.Error() }
