package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return rm
}

func metricNames(rm metricdata.ResourceMetrics) map[string]bool {
	names := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	return names
}

func TestMetrics_RecordsInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := context.Background()
	m.RecordCacheLookup(ctx, true)
	m.RecordCacheLookup(ctx, false)
	m.RecordSummary(ctx, "ai", 120*time.Millisecond, nil)
	m.RecordSummary(ctx, "heuristic", 30*time.Millisecond, errors.New("model unavailable"))
	m.RecordValidation(ctx, "lookup_customer", true)

	rm := collectMetrics(t, reader)
	names := metricNames(rm)

	for _, want := range []string{
		"policy.cache.lookups",
		"policy.summary.total",
		"policy.summary.errors",
		"policy.summary.duration_ms",
		"tool.validation.total",
	} {
		if !names[want] {
			t.Errorf("metric %q was not recorded", want)
		}
	}
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	ctx := context.Background()

	// Must not panic.
	m.RecordCacheLookup(ctx, true)
	m.RecordSummary(ctx, "raw_truncated", time.Second, nil)
	m.RecordValidation(ctx, "tool", false)
}
