package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"northline-decorators/internal/common/logger"
	"northline-decorators/internal/leads"
	"northline-decorators/internal/site"
)

func SetupRoutes(version, buildTime string, siteContent *site.Site, leadsService *leads.Service, log logger.Logger) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware(log))

	// Create handlers
	systemHandler := &SystemHandler{}
	schemaHandler := NewSchemaHandler(siteContent)
	contactHandler := NewContactHandler(leadsService, log)

	// Operational endpoints
	r.HandleFunc("/health", systemHandler.Health).Methods("GET")
	r.HandleFunc("/version", systemHandler.Version(version, buildTime)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/schema/organization", schemaHandler.Organization).Methods("GET")
	api.HandleFunc("/schema/local-business", schemaHandler.LocalBusiness).Methods("GET")
	api.HandleFunc("/schema/services/{slug}", schemaHandler.Service).Methods("GET")
	api.HandleFunc("/schema/faqs", schemaHandler.FAQs).Methods("GET")
	api.HandleFunc("/schema/reviews", schemaHandler.Reviews).Methods("GET")

	return r
}
