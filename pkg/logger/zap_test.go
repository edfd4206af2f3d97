package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/pokedex/pkg/ctxmeta"
	"github.com/Gunvolt24/pokedex/pkg/logger"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithSource(ctx, ctxmeta.SourceKafka)
	ctx, span := tp.Tracer("test").Start(ctx, "op")
	defer span.End()

	log.Infof(ctx, "toggle %s", "pikachu")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "toggle pikachu", entry.Message)

	fields := entry.ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, ctxmeta.SourceKafka, fields["source"])
	require.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	require.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestZapLogger_NoMetadata(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))

	log.Warnf(context.Background(), "plain")
	var nilCtx context.Context
	log.Errorf(nilCtx, "nil ctx")

	require.Equal(t, 2, logs.Len())
	for _, e := range logs.All() {
		require.Empty(t, e.Context)
	}
	require.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	require.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestNewZapLogger_Levels(t *testing.T) {
	log, cleanup, err := logger.NewZapLogger(true, "warn")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	require.False(t, log.Base().Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Base().Core().Enabled(zapcore.WarnLevel))

	_, _, err = logger.NewZapLogger(false, "chatty")
	require.Error(t, err)
}
