package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	tr, err := New(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestNilTracer_IsNoop(t *testing.T) {
	var tr *Tracer
	ctx, span := tr.Start(context.Background(), "noop")
	assert.NotNil(t, ctx)
	span.End(Int("x", 1))
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracer_RecordsSpanWithAttributes(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tr := NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := tr.Start(context.Background(), "loadout.add_plate")
	span.End(Weight("plate", 25), Int("plates", 3), Bool("persisted", true))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "loadout.add_plate", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Float64("barbell.plate", 25),
		attribute.Int("barbell.plates", 3),
		attribute.Bool("barbell.persisted", true),
	}, ended[0].Attributes())

	require.NoError(t, tr.Shutdown(context.Background()))
}

func TestNew_EnabledWithEndpoint(t *testing.T) {
	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318"} {
		t.Setenv(EndpointEnv, endpoint)
		t.Setenv(ServiceNameEnv, "barbell-test")

		tr, err := New(context.Background())
		require.NoError(t, err, endpoint)
		require.NotNil(t, tr, endpoint)
		assert.NoError(t, tr.Shutdown(context.Background()))
	}
}
