package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_received_total",
			Help: "Total number of quote-request submissions received",
		},
	)

	LeadsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_failed_total",
			Help: "Total number of quote-request submissions that did not result in a delivered email",
		},
		[]string{"reason"},
	)

	LeadEmailDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "lead_email_send_duration_seconds",
			Help: "Duration of the outbound notification email call in seconds",
		},
	)

	SchemaDocuments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_documents_total",
			Help: "Structured data documents served, by schema type",
		},
		[]string{"type"},
	)
)
