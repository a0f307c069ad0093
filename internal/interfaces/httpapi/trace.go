package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("liga-tracker/internal/interfaces/httpapi")

// handlerSpan opens a span for one handler invocation. Routes the HTTP
// middleware filters out (health checks) carry no parent span; those calls
// get the parent back unchanged instead of a standalone root span.
func handlerSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !strings.HasPrefix(name, "httpapi.Handler.") {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name)
}
