package leads

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "northline-decorators/internal/common/errors"
	"northline-decorators/internal/common/logger"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	Calls         int
	LastInput     *ses.SendEmailInput
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.Calls++
	m.LastInput = params
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, params, optFns...)
	}
	return &ses.SendEmailOutput{}, nil
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Enabled:   true,
		FromEmail: "website@northlinedecorators.co.uk",
		FromName:  "Northline Decorators Website",
		ToEmail:   "quotes@northlinedecorators.co.uk",
		Timeout:   5 * time.Second,
	}
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "07911223344",
		"postcode":     "N8 9AA",
		"propertyType": PropertyTerraced,
	}
}

func marshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func newTestService(t *testing.T, cfg *Config, mock *MockSESService) *Service {
	t.Helper()
	var sesClient SESService
	if mock != nil {
		sesClient = mock
	}
	return NewService(cfg, sesClient, logger.NewTestLogger(t), nil)
}

// ==========================
// Pipeline Tests
// ==========================

func TestSubmit_Success(t *testing.T) {
	mock := &MockSESService{}
	svc := newTestService(t, createTestConfig(), mock)

	payload := validPayload()
	payload["rooms"] = "kitchen, hallway"

	result, err := svc.Submit(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "24 hours")
	assert.NotEmpty(t, result.LeadID)

	// Exactly one email, to the fixed business inbox, replyable to the
	// customer.
	require.Equal(t, 1, mock.Calls)
	input := mock.LastInput
	assert.Equal(t, []string{"quotes@northlinedecorators.co.uk"}, input.Destination.ToAddresses)
	assert.Equal(t, []string{"jane@example.com"}, input.ReplyToAddresses)
	assert.Equal(t, "Northline Decorators Website <website@northlinedecorators.co.uk>", *input.Source)
	assert.Equal(t, "New Quote Request from Jane Doe", *input.Message.Subject.Data)

	body := *input.Message.Body.Html.Data
	assert.Contains(t, body, "Rooms/Areas")
	assert.Contains(t, body, "kitchen, hallway")
	assert.NotContains(t, body, "Preferred Start Date")
	assert.NotContains(t, body, "Additional Details")
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	required := []string{"name", "email", "phone", "postcode", "propertyType"}

	for _, field := range required {
		t.Run("missing "+field, func(t *testing.T) {
			mock := &MockSESService{}
			svc := newTestService(t, createTestConfig(), mock)

			payload := validPayload()
			delete(payload, field)

			_, err := svc.Submit(context.Background(), marshal(t, payload))

			require.Error(t, err)
			stdErr := apperrors.Normalize(err)
			assert.Equal(t, apperrors.ErrCodeValidationFailed, stdErr.Code)
			assert.Equal(t, "Missing required fields", stdErr.Message)
			// Validation short-circuits before any I/O.
			assert.Equal(t, 0, mock.Calls)
		})

		t.Run("empty "+field, func(t *testing.T) {
			mock := &MockSESService{}
			svc := newTestService(t, createTestConfig(), mock)

			payload := validPayload()
			payload[field] = ""

			_, err := svc.Submit(context.Background(), marshal(t, payload))

			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.Normalize(err).Code)
			assert.Equal(t, 0, mock.Calls)
		})
	}
}

func TestSubmit_EmailNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		mock *MockSESService
	}{
		{name: "nil client", cfg: createTestConfig(), mock: nil},
		{
			name: "delivery disabled",
			cfg: func() *Config {
				c := createTestConfig()
				c.Enabled = false
				return c
			}(),
			mock: &MockSESService{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.cfg, tt.mock)

			// Even a fully valid payload must not reach the provider.
			_, err := svc.Submit(context.Background(), marshal(t, validPayload()))

			require.Error(t, err)
			stdErr := apperrors.Normalize(err)
			assert.Equal(t, apperrors.ErrCodeEmailNotConfigured, stdErr.Code)
			if tt.mock != nil {
				assert.Equal(t, 0, tt.mock.Calls)
			}
		})
	}
}

func TestSubmit_ProviderErrorNotLeaked(t *testing.T) {
	mock := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("MessageRejected: sending quota exceeded for identity arn:aws:ses:...")
		},
	}
	svc := newTestService(t, createTestConfig(), mock)

	_, err := svc.Submit(context.Background(), marshal(t, validPayload()))

	require.Error(t, err)
	stdErr := apperrors.Normalize(err)
	assert.Equal(t, apperrors.ErrCodeEmailSendFailed, stdErr.Code)
	// Client-facing message stays generic; provider text is Details-only.
	assert.Equal(t, "Failed to send email", stdErr.Message)
	assert.Contains(t, stdErr.Details, "MessageRejected")
	assert.Equal(t, 1, mock.Calls)
}

func TestSubmit_MalformedBodyIsInternalError(t *testing.T) {
	mock := &MockSESService{}
	svc := newTestService(t, createTestConfig(), mock)

	_, err := svc.Submit(context.Background(), []byte("{not json"))

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.Normalize(err).Code)
	assert.Equal(t, 0, mock.Calls)
}

func TestSubmit_OptionalFieldsAllPresent(t *testing.T) {
	mock := &MockSESService{}
	svc := newTestService(t, createTestConfig(), mock)

	payload := validPayload()
	payload["rooms"] = "living room"
	payload["preferredDate"] = "June 2026"
	payload["message"] = "Please quote for two coats."

	_, err := svc.Submit(context.Background(), marshal(t, payload))
	require.NoError(t, err)

	body := *mock.LastInput.Message.Body.Html.Data
	assert.Contains(t, body, "Rooms/Areas")
	assert.Contains(t, body, "Preferred Start Date")
	assert.Contains(t, body, "June 2026")
	assert.Contains(t, body, "Additional Details")
	assert.Contains(t, body, "Please quote for two coats.")
}

func TestSubmit_UserInputEscapedInEmail(t *testing.T) {
	mock := &MockSESService{}
	svc := newTestService(t, createTestConfig(), mock)

	payload := validPayload()
	payload["name"] = `<script>alert("x")</script>`
	payload["message"] = "line one\n<img src=x onerror=alert(1)>"

	_, err := svc.Submit(context.Background(), marshal(t, payload))
	require.NoError(t, err)

	body := *mock.LastInput.Message.Body.Html.Data
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "&lt;script&gt;")
	// Newlines in the free-text message become <br> after escaping.
	assert.Contains(t, body, "line one<br>")

	// The subject is plain text and carries the raw name.
	assert.Equal(t, `New Quote Request from <script>alert("x")</script>`, *mock.LastInput.Message.Subject.Data)
}
