package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer provides span helpers over the globally configured OpenTelemetry
// provider. Without a configured provider every call is a no-op.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer for the named component
func NewTracer(serviceName string) *Tracer {
	return &Tracer{tracer: otel.Tracer(serviceName)}
}

// StartSpan starts a span; the caller must end it
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}

// TraceFunction wraps a function in a span, recording any error
func (t *Tracer) TraceFunction(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := t.tracer.Start(ctx, name)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// AddAttribute attaches a string attribute to the current span
func (t *Tracer) AddAttribute(ctx context.Context, key, value string) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String(key, value))
}
