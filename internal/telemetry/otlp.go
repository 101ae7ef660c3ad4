// Package telemetry installs OpenTelemetry tracing for the client.
//
// Tracing is opt-in: it is enabled by OTEL_EXPORTER_OTLP_ENDPOINT and spans
// are exported over OTLP/HTTP. Trace context is always propagated to the
// API in W3C traceparent headers, so a traced backend can join the trace.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the instrumentation scope of the client spans.
	TracerName = "esportivai"

	defaultServiceName = "esportivai"
)

// Provider is the tracer provider installed by Setup. A nil *Provider is
// valid and means tracing is off.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup installs the propagator and, when OTEL_EXPORTER_OTLP_ENDPOINT is
// set, a batching OTLP/HTTP tracer provider named by OTEL_SERVICE_NAME. It
// returns nil when no endpoint is configured.
func Setup(ctx context.Context) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: otlp exporter for %s: %w", endpoint, err)
	}

	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = defaultServiceName
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(name))),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}, nil
}

// Tracer returns the client tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(TracerName)
}

// Inject writes the trace context of ctx into h.
func Inject(ctx context.Context, h http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
