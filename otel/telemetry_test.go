//go:build unit

package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewTelemetry_WithProviders(t *testing.T) {
	t.Parallel()
	tp := sdktrace.NewTracerProvider()
	mp := sdkmetric.NewMeterProvider()
	defer tp.Shutdown(context.Background())
	defer mp.Shutdown(context.Background())

	tel, err := NewTelemetry(tp, mp, nil)
	require.NoError(t, err)
	require.NotNil(t, tel.Tracer)
	require.NotNil(t, tel.Propagator)
	require.NotNil(t, tel.LinesSent)
	require.NotNil(t, tel.SendDuration)
	require.NotNil(t, tel.SendErrors)
	require.NotNil(t, tel.HandlerActions)
}

func TestNewTelemetry_NilProviders(t *testing.T) {
	t.Parallel()
	tel, err := NewTelemetry(nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, tel.Tracer)
	require.NotNil(t, tel.Propagator)
}

func TestNoop(t *testing.T) {
	t.Parallel()
	tel := Noop()
	require.NotNil(t, tel)

	require.NotPanics(
		t, func() {
			tel.LinesSent.Add(context.Background(), 1)
			tel.SendDuration.Record(context.Background(), 0.5)
			_, span := tel.Tracer.Start(context.Background(), "test")
			span.End()
		},
	)
}

func TestTelemetry_RecordsToMeterProvider(t *testing.T) {
	t.Parallel()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	tel, err := NewTelemetry(nil, mp, nil)
	require.NoError(t, err)

	tel.LinesSent.Add(context.Background(), 3)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Equal(t, scopeName, rm.ScopeMetrics[0].Scope.Name)

	var found bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "logline.sink.lines" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		require.Equal(t, int64(3), sum.DataPoints[0].Value)
		found = true
	}
	require.True(t, found)
}
