package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records pipeline and validation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCacheLookup records a summary-cache lookup and whether it hit.
	RecordCacheLookup(ctx context.Context, hit bool)

	// RecordSummary records a completed pipeline run with the tier that
	// produced the returned text.
	RecordSummary(ctx context.Context, tier string, duration time.Duration, err error)

	// RecordValidation records a tool-output validation and its outcome.
	RecordValidation(ctx context.Context, toolName string, ok bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter           metric.Meter
	cacheLookups    metric.Int64Counter
	summaryCount    metric.Int64Counter
	summaryErrors   metric.Int64Counter
	summaryDuration metric.Float64Histogram
	validationCount metric.Int64Counter
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	cacheLookups, err := meter.Int64Counter(
		"policy.cache.lookups",
		metric.WithDescription("Total number of summary-cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	summaryCount, err := meter.Int64Counter(
		"policy.summary.total",
		metric.WithDescription("Total number of summary pipeline runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	summaryErrors, err := meter.Int64Counter(
		"policy.summary.errors",
		metric.WithDescription("Summary pipeline runs that degraded past the model tier"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	summaryDuration, err := meter.Float64Histogram(
		"policy.summary.duration_ms",
		metric.WithDescription("Summary pipeline duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	validationCount, err := meter.Int64Counter(
		"tool.validation.total",
		metric.WithDescription("Total number of tool-output validations"),
		metric.WithUnit("{validation}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:           meter,
		cacheLookups:    cacheLookups,
		summaryCount:    summaryCount,
		summaryErrors:   summaryErrors,
		summaryDuration: summaryDuration,
		validationCount: validationCount,
	}, nil
}

func (m *metricsImpl) RecordCacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("cache.hit", hit),
	))
}

func (m *metricsImpl) RecordSummary(ctx context.Context, tier string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("summary.tier", tier))

	m.summaryCount.Add(ctx, 1, opt)
	if err != nil {
		m.summaryErrors.Add(ctx, 1, opt)
	}
	m.summaryDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}

func (m *metricsImpl) RecordValidation(ctx context.Context, toolName string, ok bool) {
	m.validationCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool.name", toolName),
		attribute.Bool("validation.ok", ok),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that discards everything.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordCacheLookup(ctx context.Context, hit bool) {}
func (m *noopMetrics) RecordSummary(ctx context.Context, tier string, duration time.Duration, err error) {
}
func (m *noopMetrics) RecordValidation(ctx context.Context, toolName string, ok bool) {}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
