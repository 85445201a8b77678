package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.ForceFlush(context.Background()))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracerProvider_WithProcessor(t *testing.T) {
	original := otel.GetTracerProvider()
	defer otel.SetTracerProvider(original)

	sr := tracetest.NewSpanRecorder()
	cfg := Config{Enabled: true, SamplingRatio: 1, ServiceName: "sistema-empresa-test"}
	tp, err := newTracerProvider(cfg, zap.NewNop(), sdktrace.WithSpanProcessor(sr))
	require.NoError(t, err)
	assert.True(t, tp.IsEnabled())

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	var serviceName string
	for _, attr := range spans[0].Resource().Attributes() {
		if attr.Key == "service.name" {
			serviceName = attr.Value.AsString()
		}
	}
	assert.Equal(t, "sistema-empresa-test", serviceName)
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Contains(t, sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(0).Description(), "AlwaysOffSampler")
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}
