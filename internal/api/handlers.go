package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "northline-decorators/internal/common/errors"
	"northline-decorators/internal/common/logger"
	"northline-decorators/internal/common/metrics"
	"northline-decorators/internal/leads"
	"northline-decorators/internal/schema"
	"northline-decorators/internal/site"
)

// maxBodyBytes bounds the contact-form body; a quote request is a few KB at
// most.
const maxBodyBytes = 64 << 10

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, stdErr *apperrors.StandardError) {
	writeJSON(w, apperrors.HTTPStatus(stdErr.Code), errorBody{Error: stdErr.Message})
}

// --- System endpoints ---

type SystemHandler struct{}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SystemHandler) Version(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version":   version,
			"buildTime": buildTime,
		})
	}
}

// --- Structured data endpoints ---

// SchemaHandler serves the JSON-LD documents the rendering layer embeds in
// <script type="application/ld+json"> elements.
type SchemaHandler struct {
	site *site.Site
	gen  *schema.Generator
}

func NewSchemaHandler(s *site.Site) *SchemaHandler {
	return &SchemaHandler{site: s, gen: schema.New(s)}
}

func (h *SchemaHandler) Organization(w http.ResponseWriter, r *http.Request) {
	metrics.SchemaDocuments.WithLabelValues("organization").Inc()
	writeJSON(w, http.StatusOK, h.gen.Organization())
}

// LocalBusiness serves the generic node, or the per-area node when the
// location query parameter names a served area.
func (h *SchemaHandler) LocalBusiness(w http.ResponseWriter, r *http.Request) {
	metrics.SchemaDocuments.WithLabelValues("local_business").Inc()

	slug := r.URL.Query().Get("location")
	if slug == "" {
		writeJSON(w, http.StatusOK, h.gen.LocalBusiness())
		return
	}

	loc := h.site.LocationBySlug(slug)
	if loc == nil {
		writeError(w, apperrors.NewNotFoundError("unknown location: "+slug))
		return
	}
	writeJSON(w, http.StatusOK, h.gen.LocalBusinessFor(*loc))
}

// Service serves the Service node and the page's breadcrumb trail together,
// in embed order.
func (h *SchemaHandler) Service(w http.ResponseWriter, r *http.Request) {
	metrics.SchemaDocuments.WithLabelValues("service").Inc()

	slug := mux.Vars(r)["slug"]
	svc := h.site.ServiceBySlug(slug)
	if svc == nil {
		writeError(w, apperrors.NewNotFoundError("unknown service: "+slug))
		return
	}

	doc, err := h.gen.Service(schema.ServiceInput{
		Name:        svc.Name,
		Description: svc.Short,
		URL:         h.site.AbsoluteURL("/services/" + svc.Slug),
	})
	if err != nil {
		writeError(w, apperrors.NewInternalError(err.Error()))
		return
	}

	crumbs := h.gen.Breadcrumbs([]schema.BreadcrumbItem{
		{Name: "Home", URL: h.site.URL},
		{Name: "Services", URL: h.site.AbsoluteURL("/services")},
		{Name: svc.Name, URL: h.site.AbsoluteURL("/services/" + svc.Slug)},
	})

	writeJSON(w, http.StatusOK, []interface{}{doc, crumbs})
}

func (h *SchemaHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	metrics.SchemaDocuments.WithLabelValues("faq").Inc()
	writeJSON(w, http.StatusOK, h.gen.FAQ(h.site.AllFAQs()))
}

func (h *SchemaHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	metrics.SchemaDocuments.WithLabelValues("review").Inc()

	docs := make([]schema.Review, 0, len(h.site.Reviews))
	for _, rec := range h.site.Reviews {
		docs = append(docs, h.gen.Review(rec))
	}
	writeJSON(w, http.StatusOK, docs)
}

// --- Contact endpoint ---

type ContactHandler struct {
	service *leads.Service
	logger  logger.Logger
}

func NewContactHandler(service *leads.Service, log logger.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: log}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, apperrors.NewInternalError("read request body: "+err.Error()))
		return
	}

	result, err := h.service.Submit(r.Context(), body)
	if err != nil {
		stdErr := apperrors.Normalize(err)
		h.logger.WithError(stdErr).Warn("quote request not delivered", map[string]interface{}{
			"code":      string(stdErr.Code),
			"details":   stdErr.Details,
			"requestId": RequestID(r.Context()),
		})
		writeError(w, stdErr)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
