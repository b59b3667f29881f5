// internal/common/observability/tracing.go
package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartJob opens the span covering one job. Without a tracer it returns the
// span already on ctx, which is a no-op for a bare context.
func (o *Observability) StartJob(ctx context.Context, taskType string, jobKey int64) (context.Context, trace.Span) {
	if o == nil || o.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return o.tracer.Start(ctx, taskType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("task_type", taskType),
			attribute.Int64("job_key", jobKey),
		),
	)
}

// RecordJobError marks the job span on ctx as failed with code.
func RecordJobError(ctx context.Context, code string, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(attribute.String("error_code", code)))
	span.SetStatus(codes.Error, code)
}
