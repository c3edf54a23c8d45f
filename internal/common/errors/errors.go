// Package errors provides standardized error handling for the lead pipeline
// and the public API layer.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmailNotConfigured ErrorCode = "EMAIL_NOT_CONFIGURED"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmailSendFailed    ErrorCode = "EMAIL_SEND_FAILED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Details and
// Metadata are for server-side logs only and must never reach a client
// response body.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewEmailNotConfiguredError signals the deployment gate: no email credential
// is present, so delivery is never attempted.
func NewEmailNotConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailNotConfigured,
		Message:   "Email service not configured. Please contact us by phone.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError creates a non-retryable caller error. The per-field
// detail goes to Details, not to the client-facing Message.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Missing required fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError wraps a provider failure. The provider error text
// stays in Details for operator diagnosis.
func NewEmailSendFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Failed to send email",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "Not found",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize ensures we always have a StandardError to map to a response.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err.Error())
}

// HTTPStatus maps an error code to the status the public API returns for it.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeEmailNotConfigured:
		return http.StatusServiceUnavailable
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeEmailSendFailed, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCategory groups codes for metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeEmailNotConfigured:
		return "configuration"
	case ErrCodeValidationFailed:
		return "validation"
	case ErrCodeEmailSendFailed:
		return "delivery"
	case ErrCodeNotFound:
		return "not_found"
	default:
		return "internal"
	}
}
