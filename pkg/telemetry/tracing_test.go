package telemetry_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/pokedex/pkg/telemetry"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestClampRatio(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, telemetry.ClampRatio(-1), 1e-9)
	require.InDelta(t, 0.25, telemetry.ClampRatio(0.25), 1e-9)
	require.InDelta(t, 1.0, telemetry.ClampRatio(7), 1e-9)
}

func TestNewProvider_RecordsSpansWithServiceName(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(
		telemetry.Config{ServiceName: "pokedex-test", SampleRatio: 1},
		sdktrace.WithSpanProcessor(rec),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "favorites.toggle")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "favorites.toggle", ended[0].Name())

	var service string
	for _, kv := range ended[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	require.Equal(t, "pokedex-test", service)
}

func TestNewProvider_ZeroRatioDropsSpans(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := telemetry.NewProvider(telemetry.Config{ServiceName: "x", SampleRatio: 0}, sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "dropped")
	span.End()

	require.Empty(t, rec.Ended())
}

func TestSetup_DisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
