// internal/common/observability/metrics.go
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"tribunal-workers/internal/common/logger"
)

// Observability owns the otel meter and tracer providers. Its instruments
// are exported through the default prometheus registry served on /metrics.
type Observability struct {
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	jobCounter     otelmetric.Int64Counter
	jobDuration    otelmetric.Float64Histogram
	pointsTotal    otelmetric.Int64Histogram
}

type Option func(*options)

type options struct {
	spanProcessors []sdktrace.SpanProcessor
}

// WithSpanProcessor adds a processor to the tracer provider, e.g. a batcher
// in front of an exporter.
func WithSpanProcessor(sp sdktrace.SpanProcessor) Option {
	return func(o *options) { o.spanProcessors = append(o.spanProcessors, sp) }
}

// New installs the global meter and tracer providers. When the prometheus
// exporter cannot be built only tracing is enabled.
func New(serviceName string, log logger.Logger, opts ...Option) *Observability {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tpOpts := make([]sdktrace.TracerProviderOption, 0, len(o.spanProcessors))
	for _, sp := range o.spanProcessors {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(sp))
	}
	tracerProvider := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tracerProvider)
	tracer := tracerProvider.Tracer(serviceName)

	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("prometheus exporter unavailable, otel metrics disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return &Observability{tracerProvider: tracerProvider, tracer: tracer}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	jobCounter, _ := meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)

	jobDuration, _ := meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)

	pointsTotal, _ := meter.Int64Histogram(
		"decision_notice.points",
		otelmetric.WithDescription("Activity points scored per evaluated case"),
		otelmetric.WithExplicitBucketBoundaries(0, 6, 9, 12, 15, 24, 45),
	)

	return &Observability{
		tracerProvider: tracerProvider,
		tracer:         tracer,
		meterProvider:  provider,
		meter:          meter,
		jobCounter:     jobCounter,
		jobDuration:    jobDuration,
		pointsTotal:    pointsTotal,
	}
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o == nil || o.jobCounter == nil {
		return
	}
	o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o == nil || o.jobDuration == nil {
		return
	}
	o.jobDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

// RecordPoints records the activity points of an evaluated case.
func (o *Observability) RecordPoints(ctx context.Context, benefit string, points int) {
	if o == nil || o.pointsTotal == nil {
		return
	}
	o.pointsTotal.Record(ctx, int64(points), otelmetric.WithAttributes(
		attribute.String("benefit", benefit),
	))
}

func (o *Observability) Shutdown() {
	if o == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.tracerProvider != nil {
		_ = o.tracerProvider.Shutdown(ctx)
	}
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
}
