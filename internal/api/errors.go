package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrAPI is returned when the server answers with a non-2xx status.
	ErrAPI = errors.New("api error")

	// ErrNetwork is returned when the server cannot be reached at all
	// (DNS failure, connection refused, timeout).
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is returned when the server responds with a non-2xx status code.
// It carries the status code and the raw response body for diagnostics.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body, truncated to a sane length.
	Body string
	// RequestID is the X-Request-ID sent with the failed request.
	RequestID string
}

// Error returns a human-readable description of the API error.
func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrAPI) and, for 401 responses,
// errors.Is(err, ErrUnauthorized).
func (e *APIError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.StatusCode == http.StatusUnauthorized
	}
	return target == ErrAPI
}

// NetworkError is returned when the request never produced an HTTP response:
// connection refused, DNS resolution failure, or a transport timeout.
type NetworkError struct {
	// Cause is the underlying transport error.
	Cause error
}

// Error returns a human-readable description of the network error.
func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("server unreachable: %v", e.Cause)
	}
	return "server unreachable"
}

// Unwrap returns the underlying error cause.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrNetwork).
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
