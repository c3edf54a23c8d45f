package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeEmailNotConfigured, http.StatusServiceUnavailable},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeEmailSendFailed, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.code), string(tt.code))
	}
}

func TestNormalize(t *testing.T) {
	stdErr := NewValidationError("name missing")
	assert.Same(t, stdErr, Normalize(stdErr))

	wrapped := Normalize(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
	assert.Equal(t, "Internal server error", wrapped.Message)
	assert.Equal(t, "boom", wrapped.Details)
}

func TestClientMessagesCarryNoDetail(t *testing.T) {
	e := NewEmailSendFailedError("ses: MessageRejected quota exceeded")
	assert.Equal(t, "Failed to send email", e.Message)
	assert.NotContains(t, e.Message, "MessageRejected")

	v := NewValidationError("email: required field missing")
	assert.Equal(t, "Missing required fields", v.Message)
}
