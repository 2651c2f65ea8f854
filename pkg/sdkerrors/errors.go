// Package sdkerrors defines the typed errors returned by the Cdiscount
// seller SDK. Every error embeds SDKError, so callers can use errors.As on
// the concrete kind they care about and still reach the shared context
// (status, trace id, details, raw body).
package sdkerrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const defaultAPIMessage = "API request failed"

// SDKError carries the context shared by every SDK error kind.
type SDKError struct {
	Message    string
	StatusCode int // 0 when the HTTP exchange never completed
	Details    any
	TraceID    string
	Body       []byte
	Cause      error
}

// Error implements the error interface.
func (e *SDKError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	if e.Cause != nil && e.Message == "" {
		return e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *SDKError) Unwrap() error {
	return e.Cause
}

// AuthenticationError reports a failed token exchange with the
// authorization server.
type AuthenticationError struct {
	SDKError
}

// NewAuthenticationError builds an AuthenticationError.
func NewAuthenticationError(message string, status int, cause error) *AuthenticationError {
	return &AuthenticationError{SDKError: SDKError{
		Message:    message,
		StatusCode: status,
		Cause:      cause,
	}}
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return "authentication error: " + e.SDKError.Error()
}

// APIError reports a seller API response with status >= 400, or a
// request that failed before any response was received (StatusCode 0).
type APIError struct {
	SDKError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return "api error: " + e.SDKError.Error()
}

// NewAPIError builds an APIError without a response body, typically for
// network failures.
func NewAPIError(message string, status int, cause error) *APIError {
	return &APIError{SDKError: SDKError{
		Message:    message,
		StatusCode: status,
		Cause:      cause,
	}}
}

// apiErrorBody lists the problem-details keys the seller API uses.
type apiErrorBody struct {
	Title            string `json:"title"`
	ErrorDescription string `json:"error_description"`
	Detail           string `json:"detail"`
	TraceID          string `json:"traceId"`
	Errors           any    `json:"errors"`
}

// NewAPIErrorFromResponse builds an APIError from an error response. The
// message is taken from title, error_description or detail, in that
// order. An undecodable body still yields an error carrying the raw bytes.
func NewAPIErrorFromResponse(status int, body []byte) *APIError {
	if len(body) == 0 {
		body = []byte("{}")
	}

	var parsed apiErrorBody
	_ = json.Unmarshal(body, &parsed) //nolint:errcheck // best-effort error parsing

	msg := firstNonEmpty(parsed.Title, parsed.ErrorDescription, parsed.Detail)
	if msg == "" {
		msg = defaultAPIMessage
	}

	return &APIError{SDKError: SDKError{
		Message:    msg,
		StatusCode: status,
		Details:    parsed.Errors,
		TraceID:    parsed.TraceID,
		Body:       body,
	}}
}

// IsUnauthorized reports whether the API rejected the bearer token.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ValidationError rejects caller input before anything is sent. Its
// status is always 400.
type ValidationError struct {
	SDKError
	Errors map[string][]string
}

// NewValidationError builds a ValidationError. An empty message defaults
// to "Validation failed".
func NewValidationError(message string, fieldErrors map[string][]string) *ValidationError {
	if message == "" {
		message = "Validation failed"
	}
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return &ValidationError{
		SDKError: SDKError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
			Details:    fieldErrors,
		},
		Errors: fieldErrors,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s: %v", e.Message, e.Errors)
}

// Add records a message against a field.
func (e *ValidationError) Add(field, message string) {
	e.Errors[field] = append(e.Errors[field], message)
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ConfigurationError reports a configuration that could not be read,
// parsed or validated.
type ConfigurationError struct {
	SDKError
}

// NewConfigurationError builds a ConfigurationError.
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{SDKError: SDKError{Message: message, Cause: cause}}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return "configuration error: " + e.Message
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// AsSDKError extracts the shared error context from any SDK error kind.
func AsSDKError(err error) (*SDKError, bool) {
	var (
		authErr *AuthenticationError
		apiErr  *APIError
		valErr  *ValidationError
		cfgErr  *ConfigurationError
		base    *SDKError
	)
	switch {
	case errors.As(err, &apiErr):
		return &apiErr.SDKError, true
	case errors.As(err, &authErr):
		return &authErr.SDKError, true
	case errors.As(err, &valErr):
		return &valErr.SDKError, true
	case errors.As(err, &cfgErr):
		return &cfgErr.SDKError, true
	case errors.As(err, &base):
		return base, true
	default:
		return nil, false
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := AsSDKError(err); ok {
		return e.StatusCode
	}
	return 0
}
