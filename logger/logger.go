// Package logger wraps zerolog into the house logger: JSON by default,
// service-tagged, context-aware, with a logr bridge for libraries that
// expect one.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/platform-mesh/traceware/context/keys"
)

type Level zerolog.Level

// Field names used by request-scoped loggers.
const (
	RequestIdLoggerKey = "rid"
	TraceIdLoggerKey   = "trace_id"
	SpanIdLoggerKey    = "span_id"
)

// StdLogger is a global default logger, please use with care and prefer creating your own instance
var StdLogger, _ = New(DefaultConfig())

// Config defines the logger configuration
type Config struct {
	Name   string
	Level  string
	NoJSON bool
	Output io.Writer
}

// SetDefaults set config default values
func (c *Config) SetDefaults() {
	if c.Name == "" {
		_, fileName, _, _ := runtime.Caller(0)
		c.Name = fileName
	}

	if c.Level == "" {
		c.Level = "info"
	}

	if c.Output == nil {
		c.Output = os.Stdout
	}
}

// DefaultConfig returns a logger configuration with defaults set
func DefaultConfig() Config {
	c := Config{}
	c.SetDefaults()

	return c
}

// Logger is a wrapper around a Zerolog logger instance
type Logger struct {
	zerolog.Logger
}

// ComponentLogger returns a new child logger that inherits all settings but adds a new component field
func (l *Logger) ComponentLogger(component string) *Logger {
	return l.ChildLogger("component", component)
}

// ChildLogger returns a new child logger that inherits all settings but adds a new string key field
func (l *Logger) ChildLogger(key string, value string) *Logger {
	return NewFromZerolog(l.With().Str(key, value).Logger())
}

// Level wraps the underlying zerolog level func to a traceware logger level
func (l *Logger) Level(lvl Level) *Logger {
	return NewFromZerolog(l.Logger.Level(zerolog.Level(lvl)))
}

// Logr returns a new logger that fulfills the logr.Logger interface
func (l *Logger) Logr() logr.Logger {
	return zerologr.New(&l.Logger)
}

// New returns a new Logger instance for a given service name and log level
func New(config Config) (*Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, err
	}

	logDest := config.Output
	if config.NoJSON {
		logDest = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.RFC3339}
	}

	logger := &Logger{
		Logger: zerolog.New(logDest).Level(zerologLevel).With().Timestamp().Caller().Str("service", config.Name).Logger(),
	}

	return logger, nil
}

// NewFromZerolog returns a new Logger from a Zerolog instance
func NewFromZerolog(logger zerolog.Logger) *Logger {
	return &Logger{logger}
}

// NewRequestLoggerFromZerolog returns a request-scoped Logger from a Zerolog
// instance: it adds the request id stored in ctx and, when ctx carries a
// valid span context, the trace and span ids, so log lines correlate with
// the request span.
func NewRequestLoggerFromZerolog(ctx context.Context, logger zerolog.Logger) *Logger {
	// Requesting value from ctx directly to avoid cyclic dependency to middleware package
	var requestId string
	if val, ok := ctx.Value(keys.RequestIdCtxKey).(string); ok {
		requestId = val
	}

	logCtx := logger.With().Str(RequestIdLoggerKey, requestId)
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		logCtx = logCtx.
			Str(TraceIdLoggerKey, spanCtx.TraceID().String()).
			Str(SpanIdLoggerKey, spanCtx.SpanID().String())
	}

	return &Logger{logCtx.Logger()}
}

func SetLoggerInContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, keys.LoggerCtxKey, logger)
}

// LoadLoggerFromContext returns the Logger from a given context
func LoadLoggerFromContext(ctx context.Context) *Logger {
	value := ctx.Value(keys.LoggerCtxKey)

	log, ok := value.(*Logger)
	if !ok {
		return StdLogger
	}

	return log
}
