package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var serviceTracer = otel.Tracer("liga-tracker/internal/usecase")

// serviceSpan opens a child span under the request span. Without a live
// parent (background jobs, tests) it returns the context untouched so the
// service layer never emits root spans of its own.
func serviceSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if strings.TrimSpace(name) == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return serviceTracer.Start(ctx, name)
}
