// Package domain provides the intent event, dialog action and canonical
// error types shared by every entry point of the advisor.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of an API error.
type ErrorType string

const (
	// ErrorTypeInvalidRequest indicates a malformed or invalid event.
	ErrorTypeInvalidRequest ErrorType = "invalid_request"

	// ErrorTypeNotFound indicates no handler exists for the requested intent.
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeServer indicates an internal server error.
	ErrorTypeServer ErrorType = "server"
)

// ErrorCode provides additional specificity beyond the error type.
type ErrorCode string

const (
	ErrorCodeUnsupportedIntent ErrorCode = "unsupported_intent"
	ErrorCodeMissingIntent     ErrorCode = "missing_intent"
	ErrorCodeMalformedEvent    ErrorCode = "malformed_event"
	ErrorCodeSchemaViolation   ErrorCode = "schema_violation"
)

// ErrUnsupportedIntent is matched with errors.Is against any error returned
// for an intent name that has no registered handler.
var ErrUnsupportedIntent = errors.New("unsupported intent")

// APIError represents a canonical error that entry points translate into
// their own wire format.
type APIError struct {
	// Type is the category of error
	Type ErrorType `json:"type"`

	// Code is an optional specific error code
	Code ErrorCode `json:"code,omitempty"`

	// Message is the human-readable error message
	Message string `json:"message"`

	// Param is the event field that caused the error (if applicable)
	Param string `json:"param,omitempty"`

	// StatusCode is the suggested HTTP status code
	StatusCode int `json:"-"`

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPStatusCode returns the appropriate HTTP status code for this error.
func (e *APIError) HTTPStatusCode() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}

	switch e.Type {
	case ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewAPIError creates a new API error.
func NewAPIError(errType ErrorType, message string) *APIError {
	return &APIError{
		Type:    errType,
		Message: message,
	}
}

// WithCode adds an error code to the error.
func (e *APIError) WithCode(code ErrorCode) *APIError {
	e.Code = code
	return e
}

// WithParam adds a parameter name to the error.
func (e *APIError) WithParam(param string) *APIError {
	e.Param = param
	return e
}

// WithStatusCode sets a specific HTTP status code.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// WithCause records the error this one wraps.
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// ErrInvalidRequest creates an invalid request error.
func ErrInvalidRequest(message string) *APIError {
	return NewAPIError(ErrorTypeInvalidRequest, message)
}

// ErrServer creates a server error.
func ErrServer(message string) *APIError {
	return NewAPIError(ErrorTypeServer, message)
}

// ErrIntentNotSupported creates the error returned for an unknown intent name.
func ErrIntentNotSupported(name string) *APIError {
	return NewAPIError(ErrorTypeNotFound, "Intent with name "+name+" not supported").
		WithCode(ErrorCodeUnsupportedIntent).
		WithParam("currentIntent.name").
		WithCause(ErrUnsupportedIntent)
}

// ErrMissingIntent creates the error returned when the event has no currentIntent.
func ErrMissingIntent() *APIError {
	return ErrInvalidRequest("event has no currentIntent").
		WithCode(ErrorCodeMissingIntent).
		WithParam("currentIntent")
}

// AsAPIError converts any error to an *APIError. Errors that are not already
// canonical become server errors.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrServer(err.Error()).WithCause(err)
}
