// internal/common/observability/observability.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Observability struct {
	meterProvider   *metric.MeterProvider
	tracerProvider  *sdktrace.TracerProvider
	meter           otelmetric.Meter
	tracer          oteltrace.Tracer
	sessionCounter  otelmetric.Int64Counter
	sessionDuration otelmetric.Float64Histogram
}

// New wires an otel meter provider backed by the Prometheus exporter and,
// when jaegerEndpoint is non-empty, a tracer provider exporting to Jaeger.
func New(serviceName, jaegerEndpoint string) *Observability {
	obs := &Observability{}

	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return obs
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	sessionCounter, _ := meter.Int64Counter(
		"assessments.scored",
		otelmetric.WithDescription("Number of assessment sessions scored"),
	)

	sessionDuration, _ := meter.Float64Histogram(
		"assessments.duration",
		otelmetric.WithDescription("Assessment scoring duration"),
		otelmetric.WithUnit("ms"),
	)

	obs.meterProvider = provider
	obs.meter = meter
	obs.sessionCounter = sessionCounter
	obs.sessionDuration = sessionDuration

	if jaegerEndpoint != "" {
		exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			log.Printf("Failed to create Jaeger exporter: %v", err)
			return obs
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName(serviceName),
			)),
		)
		otel.SetTracerProvider(tp)
		obs.tracerProvider = tp
		obs.tracer = tp.Tracer(serviceName)
	}

	return obs
}

// StartSpan begins a pipeline span; returns the input context unchanged when
// tracing is not configured.
func (o *Observability) StartSpan(ctx context.Context, name string) (context.Context, oteltrace.Span) {
	if o.tracer == nil {
		return oteltrace.NewNoopTracerProvider().Tracer("noop").Start(ctx, name)
	}
	return o.tracer.Start(ctx, name)
}

func (o *Observability) RecordSessionScored(ctx context.Context, educationLevel string) {
	if o.sessionCounter != nil {
		o.sessionCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("education_level", educationLevel),
		))
	}
}

func (o *Observability) RecordSessionDuration(ctx context.Context, duration time.Duration, status string) {
	if o.sessionDuration != nil {
		o.sessionDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.meterProvider != nil {
		o.meterProvider.Shutdown(ctx)
	}
	if o.tracerProvider != nil {
		o.tracerProvider.Shutdown(ctx)
	}
}
