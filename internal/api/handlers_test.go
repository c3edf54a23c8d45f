package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northline-decorators/internal/common/logger"
	"northline-decorators/internal/leads"
	"northline-decorators/internal/site"
)

// ==========================
// Mock Implementations
// ==========================

type mockSES struct {
	sendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	calls         int
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.calls++
	if m.sendEmailFunc != nil {
		return m.sendEmailFunc(ctx, params, optFns...)
	}
	return &ses.SendEmailOutput{}, nil
}

// ==========================
// Test Helper Functions
// ==========================

func testLeadsConfig() *leads.Config {
	return &leads.Config{
		Enabled:   true,
		FromEmail: "website@northlinedecorators.co.uk",
		FromName:  "Northline Decorators Website",
		ToEmail:   "quotes@northlinedecorators.co.uk",
		Timeout:   5 * time.Second,
	}
}

func newTestRouter(t *testing.T, mock *mockSES, cfg *leads.Config) http.Handler {
	t.Helper()
	log := logger.NewTestLogger(t)
	var sesClient leads.SESService
	if mock != nil {
		sesClient = mock
	}
	svc := leads.NewService(cfg, sesClient, log, nil)
	return SetupRoutes("test", "now", site.Default(), svc, log)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// ==========================
// Contact Endpoint
// ==========================

func TestContact_Success(t *testing.T) {
	mock := &mockSES{}
	router := newTestRouter(t, mock, testLeadsConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@example.com","phone":"07911223344","postcode":"N8 9AA","propertyType":"Terraced House","rooms":"kitchen, hallway"}`)
	rec := doRequest(t, router, http.MethodPost, "/api/contact", payload)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp["message"], "24 hours")
	assert.Equal(t, 1, mock.calls)
}

func TestContact_MissingFields(t *testing.T) {
	mock := &mockSES{}
	router := newTestRouter(t, mock, testLeadsConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@example.com"}`)
	rec := doRequest(t, router, http.MethodPost, "/api/contact", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Equal(t, 0, mock.calls)
}

func TestContact_NotConfigured(t *testing.T) {
	cfg := testLeadsConfig()
	cfg.Enabled = false
	router := newTestRouter(t, nil, cfg)

	payload := []byte(`{"name":"Jane Doe","email":"jane@example.com","phone":"07911223344","postcode":"N8 9AA","propertyType":"Terraced House"}`)
	rec := doRequest(t, router, http.MethodPost, "/api/contact", payload)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Email service not configured. Please contact us by phone.", resp["error"])
}

func TestContact_ProviderFailure(t *testing.T) {
	mock := &mockSES{
		sendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("MessageRejected: address not verified")
		},
	}
	router := newTestRouter(t, mock, testLeadsConfig())

	payload := []byte(`{"name":"Jane Doe","email":"jane@example.com","phone":"07911223344","postcode":"N8 9AA","propertyType":"Terraced House"}`)
	rec := doRequest(t, router, http.MethodPost, "/api/contact", payload)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Failed to send email", resp["error"])
	// Provider detail never reaches the response body.
	assert.NotContains(t, rec.Body.String(), "MessageRejected")
}

func TestContact_MalformedBody(t *testing.T) {
	router := newTestRouter(t, &mockSES{}, testLeadsConfig())

	rec := doRequest(t, router, http.MethodPost, "/api/contact", []byte("{not json"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Internal server error", resp["error"])
}

// ==========================
// Schema Endpoints
// ==========================

func TestSchemaOrganization(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/api/schema/organization", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	decodeJSON(t, rec, &doc)
	assert.Equal(t, "PaintingCompany", doc["@type"])
	rating, ok := doc["aggregateRating"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "4.9", rating["ratingValue"])
	assert.Equal(t, "87", rating["reviewCount"])
}

func TestSchemaLocalBusiness(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	t.Run("generic", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/schema/local-business", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var doc map[string]interface{}
		decodeJSON(t, rec, &doc)
		hours, ok := doc["openingHoursSpecification"].([]interface{})
		require.True(t, ok)
		assert.Len(t, hours, 2)
	})

	t.Run("per location", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/schema/local-business?location=highgate", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var doc map[string]interface{}
		decodeJSON(t, rec, &doc)
		addr, ok := doc["address"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "N6", addr["postalCode"])
		assert.NotNil(t, doc["geo"])
	})

	t.Run("unknown location", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/schema/local-business?location=croydon", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSchemaService(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/api/schema/services/wallpapering", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]interface{}
	decodeJSON(t, rec, &docs)
	require.Len(t, docs, 2)

	assert.Equal(t, "Service", docs[0]["@type"])
	assert.Equal(t, "Wallpapering", docs[0]["name"])

	assert.Equal(t, "BreadcrumbList", docs[1]["@type"])
	trail, ok := docs[1]["itemListElement"].([]interface{})
	require.True(t, ok)
	require.Len(t, trail, 3)
	last := trail[2].(map[string]interface{})
	assert.Equal(t, float64(3), last["position"])
	assert.Equal(t, "Wallpapering", last["name"])
}

func TestSchemaService_Unknown(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/api/schema/services/roofing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSchemaFAQs(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/api/schema/faqs", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	decodeJSON(t, rec, &doc)
	assert.Equal(t, "FAQPage", doc["@type"])
	entities, ok := doc["mainEntity"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, len(site.Default().AllFAQs()), len(entities))
}

func TestSchemaReviews(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/api/schema/reviews", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var docs []map[string]interface{}
	decodeJSON(t, rec, &docs)
	require.Len(t, docs, 6)
	for _, doc := range docs {
		assert.Equal(t, "Review", doc["@type"])
	}
}

// ==========================
// System Endpoints
// ==========================

func TestHealth(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp["status"])
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, nil, testLeadsConfig())

	rec := doRequest(t, router, http.MethodOptions, "/api/contact", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
