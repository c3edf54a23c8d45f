package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	leadCounter   otelmetric.Int64Counter
	leadDuration  otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	leadCounter, _ := meter.Int64Counter(
		"leads.processed",
		otelmetric.WithDescription("Number of quote-request submissions processed"),
	)

	leadDuration, _ := meter.Float64Histogram(
		"leads.duration",
		otelmetric.WithDescription("Quote-request processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		leadCounter:   leadCounter,
		leadDuration:  leadDuration,
	}
}

func (o *Observability) RecordLeadProcessed(ctx context.Context, outcome string) {
	if o.leadCounter != nil {
		o.leadCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordLeadDuration(ctx context.Context, duration time.Duration, outcome string) {
	if o.leadDuration != nil {
		o.leadDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
