// Package leads implements the quote-request submission pipeline: validate
// the form payload, compose the notification email and deliver it to the
// business inbox via SES. One outbound email per successful submission,
// no retries, no persistence.
package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/google/uuid"

	apperrors "northline-decorators/internal/common/errors"
	"northline-decorators/internal/common/logger"
	"northline-decorators/internal/common/metrics"
	"northline-decorators/internal/common/observability"
)

// Config carries the delivery settings for the notification email.
type Config struct {
	Enabled   bool
	FromEmail string
	FromName  string
	ToEmail   string
	Timeout   time.Duration
}

// SESService is the slice of the SES client the pipeline needs; tests
// substitute a function-backed mock.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Service struct {
	config *Config
	logger logger.Logger
	ses    SESService
	obs    *observability.Observability
}

// NewService wires the pipeline. ses may be nil when no email credential is
// configured; every submission then short-circuits to the phone-fallback
// response without touching the network.
func NewService(config *Config, sesClient SESService, log logger.Logger, obs *observability.Observability) *Service {
	return &Service{
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "leads"}),
		ses:    sesClient,
		obs:    obs,
	}
}

// Submit runs one quote request through the pipeline. The returned error is
// always a *errors.StandardError; the caller maps its code to an HTTP status.
func (s *Service) Submit(ctx context.Context, body []byte) (*Result, error) {
	start := time.Now()
	metrics.LeadsReceived.Inc()

	result, err := s.submit(ctx, body)

	outcome := "sent"
	if err != nil {
		stdErr := apperrors.Normalize(err)
		outcome = apperrors.GetErrorCategory(stdErr.Code)
		metrics.LeadsFailed.WithLabelValues(outcome).Inc()
	}
	if s.obs != nil {
		s.obs.RecordLeadProcessed(ctx, outcome)
		s.obs.RecordLeadDuration(ctx, time.Since(start), outcome)
	}

	return result, err
}

func (s *Service) submit(ctx context.Context, body []byte) (*Result, error) {
	// Credential gate first: never call the provider with a missing or
	// placeholder credential.
	if s.ses == nil || !s.config.Enabled {
		s.logger.Warn("quote request received but email is not configured", nil)
		return nil, apperrors.NewEmailNotConfiguredError()
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewInternalError("parse request body: " + err.Error())
	}

	if stdErr := validatePayload(payload); stdErr != nil {
		s.logger.Warn("quote request rejected", map[string]interface{}{
			"details": stdErr.Details,
		})
		return nil, stdErr
	}

	var req QuoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperrors.NewInternalError("decode quote request: " + err.Error())
	}

	leadID := uuid.New().String()
	log := s.logger.WithFields(map[string]interface{}{
		"leadId":   leadID,
		"postcode": req.Postcode,
	})

	subject, html, err := composeNotification(&req)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	// The send deadline is detached from the request context: if the
	// customer closes the tab mid-send the business still gets the lead.
	sendCtx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	sendStart := time.Now()
	_, err = s.ses.SendEmail(sendCtx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{s.config.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(html)},
			},
		},
		Source:           aws.String(fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)),
		ReplyToAddresses: []string{req.Email},
	})
	metrics.LeadEmailDuration.Observe(time.Since(sendStart).Seconds())
	if err != nil {
		log.Error("notification email failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperrors.NewEmailSendFailedError(err.Error())
	}

	log.Info("lead forwarded", map[string]interface{}{
		"propertyType": req.PropertyType,
	})

	return &Result{
		Success: true,
		Message: "Thank you! Your quote request has been sent. We'll respond within 24 hours.",
		LeadID:  leadID,
	}, nil
}
