package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates the client credentials are missing.
	ErrNotConfigured = errors.New("API credentials not configured")

	// ErrNoToken indicates no OAuth token is available.
	ErrNoToken = errors.New("no OAuth token available")

	// ErrTokenExpired indicates the held token is expired or inside the
	// expiry buffer and may not be used for gateway calls.
	ErrTokenExpired = errors.New("OAuth token expired")

	// ErrGenerating indicates a token exchange is already in flight.
	ErrGenerating = errors.New("token generation already in progress")
)

// ErrorKind classifies gateway and auth failures.
type ErrorKind string

const (
	// KindAuthFailure is a bad-credentials or non-200 token endpoint outcome.
	KindAuthFailure ErrorKind = "auth_failure"

	// KindTimeout is an exceeded per-call deadline.
	KindTimeout ErrorKind = "timeout"

	// KindTransport is a network, DNS, or connection failure.
	KindTransport ErrorKind = "transport"

	// KindAPI is a non-200 response from a gateway operation.
	KindAPI ErrorKind = "api"

	// KindMalformed is an unexpected content type or unparsable body where
	// structured data was expected.
	KindMalformed ErrorKind = "malformed"
)

// APIError is the structured failure of a gateway operation. It carries the
// HTTP status (408 for timeouts, 500 for transport failures) and the parsed
// or text-wrapped response body, so upstream inconsistencies stay
// diagnosable. Gateway operations return it tagged; nothing is raised
// across the module boundary.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Body       Document
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message())
}

// Message extracts the human-readable message from the error body.
func (e *APIError) Message() string {
	if e.Body != nil {
		if msg, ok := e.Body["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return string(e.Kind)
}

// AuthError is the structured failure of a token exchange. Body holds the
// raw response text, or the transport error message for status 500.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to generate token: status %d: %s", e.StatusCode, e.Body)
}

// NewTimeoutError builds the canonical timed-out API error.
func NewTimeoutError() *APIError {
	return &APIError{
		Kind:       KindTimeout,
		StatusCode: 408,
		Body:       Document{"message": "Request timed out"},
	}
}

// NewTransportError wraps an unexpected transport failure.
func NewTransportError(err error) *APIError {
	return &APIError{
		Kind:       KindTransport,
		StatusCode: 500,
		Body:       Document{"message": fmt.Sprintf("Unexpected error: %s", err)},
	}
}

// IsTimeout reports whether err is a timed-out gateway call.
func IsTimeout(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindTimeout
}

// IsAuthFailure reports whether err is a failed token exchange.
func IsAuthFailure(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// StatusOf returns the HTTP status carried by a gateway or auth error,
// or 0 when err carries none.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	return 0
}
