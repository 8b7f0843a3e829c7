package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/platform-mesh/traceware/context/keys"
)

func TestLoggerInContext(t *testing.T) {
	ctx := context.Background()
	logger, _ := New(DefaultConfig())
	ctx = SetLoggerInContext(ctx, logger)

	retrievedLogger := LoadLoggerFromContext(ctx)
	assert.NotNil(t, retrievedLogger)
	assert.Equal(t, logger, retrievedLogger)
}

func TestLoggerInContextFallback(t *testing.T) {
	ctx := context.Background()
	retrievedLogger := LoadLoggerFromContext(ctx)
	assert.NotNil(t, retrievedLogger)
	assert.Equal(t, StdLogger, retrievedLogger)
}

func TestNewWithInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "not-a-level"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewFromZerolog(t *testing.T) {
	logger := NewFromZerolog(zerolog.New(os.Stdout))
	assert.NotNil(t, logger)
}

func TestNewRequestLoggerFromZerologAddsRequestId(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := context.WithValue(context.Background(), keys.RequestIdCtxKey, "req-1")

	logger := NewRequestLoggerFromZerolog(ctx, zerolog.New(buf))
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry[RequestIdLoggerKey])
	assert.NotContains(t, entry, TraceIdLoggerKey)
}

func TestNewRequestLoggerFromZerologAddsTraceCorrelation(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := context.WithValue(context.Background(), keys.RequestIdCtxKey, "req-1")

	traceId, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanId, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceId,
		SpanID:  spanId,
	})
	ctx = trace.ContextWithSpanContext(ctx, spanCtx)

	logger := NewRequestLoggerFromZerolog(ctx, zerolog.New(buf))
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry[TraceIdLoggerKey])
	assert.Equal(t, "00f067aa0ba902b7", entry[SpanIdLoggerKey])
}

func TestChildLogger(t *testing.T) {
	logger, _ := New(DefaultConfig())
	childLogger := logger.ChildLogger("child", "my-child")
	assert.NotNil(t, childLogger)
}

func TestComponentLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoJSON = true
	logger, _ := New(cfg)
	componentLogger := logger.ComponentLogger("my-component")
	assert.NotNil(t, componentLogger)
	componentLogger.Level(1).Debug().Msg("test")
	componentLogger.Logr().Info("test")
}
