package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer used for application service spans
const TracerName = "sistema-empresa"

// Span attribute keys used by the application services
const (
	SpanAttrEntityID    = "entity.id"
	SpanAttrCountryID   = "pais.id"
	SpanAttrStateID     = "estado.id"
	SpanAttrCityID      = "cidade.id"
	SpanAttrResultCount = "result.count"
	SpanAttrDependents  = "dependents.total"
	SpanAttrForced      = "delete.forced"
)

// StartServiceSpan starts an internal span named {service}.{method}, e.g. "city.delete".
// The caller must end the returned span.
//
//	ctx, span := telemetry.StartServiceSpan(ctx, "city", "delete", telemetry.SpanAttrCityID, id)
//	defer span.End()
func StartServiceSpan(ctx context.Context, service, method string, keyValues ...any) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(toAttributes(keyValues)...),
	)
}

// SetAttributes adds key/value pairs to the span. Non-string keys are skipped.
func SetAttributes(span trace.Span, keyValues ...any) {
	if span == nil {
		return
	}
	span.SetAttributes(toAttributes(keyValues)...)
}

// RecordError records err on the span and marks it failed. Domain errors are
// expected outcomes (not found, validation, dependents) and are only added as
// an event so they do not count as server failures.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		span.AddEvent("domain_error", trace.WithAttributes(
			attribute.String("error.code", domainErr.Code),
			attribute.String("error.message", domainErr.Message),
		))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// GetTraceID returns the trace ID of the span in ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}

func toAttributes(keyValues []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, toAttribute(key, keyValues[i+1]))
	}
	return attrs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case *int64:
		if v == nil {
			return attribute.String(key, "")
		}
		return attribute.Int64(key, *v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
