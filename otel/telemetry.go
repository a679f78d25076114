package otel

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	traceNoop "go.opentelemetry.io/otel/trace/noop"
)

const scopeName = "github.com/hugolhafner/go-logline"

// Telemetry holds all OpenTelemetry instruments used by the network sinks
// When no providers are configured, all instruments are noops with zero overhead
type Telemetry struct {
	Tracer     trace.Tracer
	Propagator propagation.TextMapPropagator

	// Delivery metrics
	LinesSent    metric.Int64Counter
	SendDuration metric.Float64Histogram

	// Error metrics
	SendErrors     metric.Int64Counter
	HandlerActions metric.Int64Counter
}

// NewTelemetry creates a Telemetry instance from the given providers.
// all providers are optional and defaulted to noops if nil
func NewTelemetry(tp trace.TracerProvider, mp metric.MeterProvider, prop propagation.TextMapPropagator) (
	*Telemetry, error,
) {
	if tp == nil {
		tp = traceNoop.NewTracerProvider()
	}
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	if prop == nil {
		prop = propagation.TraceContext{}
	}

	tracer := tp.Tracer(scopeName)
	meter := mp.Meter(scopeName)

	linesSent, err := meter.Int64Counter(
		"logline.sink.lines",
		metric.WithDescription("Log lines resolved by a sink, by send status"),
	)
	if err != nil {
		return nil, err
	}

	sendDuration, err := meter.Float64Histogram(
		"logline.sink.send.duration",
		metric.WithDescription("Time per sink send attempt"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	sendErrors, err := meter.Int64Counter(
		"logline.sink.errors",
		metric.WithDescription("Failed delivery attempts"),
	)
	if err != nil {
		return nil, err
	}

	handlerActions, err := meter.Int64Counter(
		"logline.sink.error_handler.actions",
		metric.WithDescription("Error handler decisions"),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Tracer:         tracer,
		Propagator:     prop,
		LinesSent:      linesSent,
		SendDuration:   sendDuration,
		SendErrors:     sendErrors,
		HandlerActions: handlerActions,
	}, nil
}

// Noop returns a Telemetry instance with all noop instruments
func Noop() *Telemetry {
	t, _ := NewTelemetry(nil, nil, nil)
	return t
}
