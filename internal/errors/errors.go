// Package errors provides custom error types for the answer service client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common cases
var (
	ErrEmptyQuestion   = errors.New("question cannot be empty")
	ErrInvalidResponse = errors.New("invalid response format")
)

// NetworkError represents a transport-level failure (connect, DNS, broken pipe)
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// StatusError represents a non-2xx HTTP response from the answer service
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string // Best-effort response body, may be empty
}

func (e *StatusError) Error() string {
	detail := e.Body
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("Request failed (%d): %s", e.StatusCode, detail)
}

// NewStatusError creates a new StatusError
func NewStatusError(statusCode int, endpoint, body string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Body:       body,
	}
}

// ParseError represents a response decoding failure
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsStatusError reports whether err is a non-2xx HTTP failure
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsParseError reports whether err is a response decoding failure
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// GetHTTPStatus extracts the HTTP status code from a StatusError, or 0
func GetHTTPStatus(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// GetResponseBody extracts the response body from a StatusError, or ""
func GetResponseBody(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Body
	}
	return ""
}

// GetEndpoint extracts the endpoint from a structured error, or ""
func GetEndpoint(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Endpoint
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Endpoint
	}
	return ""
}
