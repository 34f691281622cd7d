package generator

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/quantmind-br/resourcelist-go/internal/generator"
	meterName  = "github.com/quantmind-br/resourcelist-go/internal/generator"
)

// Metrics holds the OpenTelemetry instruments recorded per generation
type Metrics struct {
	Generations metric.Int64Counter
	Rewrites    metric.Int64Counter
	Entries     metric.Int64Histogram
}

func initMetrics(meter metric.Meter) *Metrics {
	m := &Metrics{}

	m.Generations, _ = meter.Int64Counter(
		"resourcelist.generations",
		metric.WithDescription("Number of manifest generations"),
	)
	m.Rewrites, _ = meter.Int64Counter(
		"resourcelist.rewrites",
		metric.WithDescription("Number of manifests rewritten because their content changed"),
	)
	m.Entries, _ = meter.Int64Histogram(
		"resourcelist.entries",
		metric.WithDescription("Number of entries per generated manifest"),
	)

	return m
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func defaultMeter() metric.Meter {
	return otel.Meter(meterName)
}
