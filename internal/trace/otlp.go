// Package trace records loadout changes as OpenTelemetry spans. Export is
// enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise every
// method is a no-op.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EndpointEnv enables OTLP export.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "barbell"
	attrPrefix         = "barbell."
)

// Tracer wraps an SDK tracer provider. A nil *Tracer is valid and records
// nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP/HTTP exporting tracer if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns nil, nil when export is not configured.
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing provider (tests use a span recorder).
func NewWithProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("barbell/loadout"),
	}
}

// Span is an in-flight span. Attributes are attached when it ends.
type Span struct {
	span oteltrace.Span
}

// Start begins a span named name.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, *Span) {
	if t == nil {
		return ctx, &Span{span: oteltrace.SpanFromContext(ctx)}
	}
	ctx, s := t.tracer.Start(ctx, name)
	return ctx, &Span{span: s}
}

// End sets attrs and ends the span.
func (s *Span) End(attrs ...attribute.KeyValue) {
	if s == nil || s.span == nil {
		return
	}
	s.span.SetAttributes(attrs...)
	s.span.End()
}

// Weight is a float attribute in the barbell.* namespace.
func Weight(key string, w float64) attribute.KeyValue {
	return attribute.Float64(attrPrefix+key, w)
}

// Int is an int attribute in the barbell.* namespace.
func Int(key string, v int) attribute.KeyValue {
	return attribute.Int(attrPrefix+key, v)
}

// Bool is a bool attribute in the barbell.* namespace.
func Bool(key string, v bool) attribute.KeyValue {
	return attribute.Bool(attrPrefix+key, v)
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
