// Package traces sets up the span-processing side of request instrumentation:
// the global tracer provider the middleware emits into, and helpers for
// carrying tracing headers to outbound calls.
package traces

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// seam for tests
var resourceNewFunc = resource.New

type Config struct {
	// ServiceName is the name of the instrumented library/service
	ServiceName string `mapstructure:"tracing-service-name"`
	// ServiceVersion is the version of the instrumented library/service
	// It must be in Semver format `<MAYOR>.<MINOR>.<PATCH>`
	ServiceVersion string `mapstructure:"tracing-service-version"`
	// Endpoint is the target of the collector.
	// Must be in the format `<DOMAIN>:<PORT>` without prefixed protocol
	// Ignored in the case of a LocalProvider
	Endpoint string `mapstructure:"tracing-endpoint"`
}

// InitProvider creates an OpenTelemetry provider shipping request spans to an
// OTLP collector over gRPC and installs it globally, so the request spans
// started by the middleware end up at the collector. The returned function
// shuts the provider down. If the collector at the configured endpoint isn't
// reachable, InitProvider returns an error.
func InitProvider(ctx context.Context, config Config) (func(ctx context.Context) error, error) {
	connCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	conn, err := grpc.DialContext(connCtx, config.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(connCtx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	return config.initProvider(ctx, traceExporter)
}

// InitLocalProvider installs a provider that pretty-prints spans to stdout,
// for local development without a collector.
func InitLocalProvider(ctx context.Context, config Config) (func(ctx context.Context) error, error) {
	traceExporter, err := stdouttrace.New(
		stdouttrace.WithWriter(os.Stdout),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}

	return config.initProvider(ctx, traceExporter)
}

func (c Config) initProvider(ctx context.Context, exporter sdkTrace.SpanExporter) (func(ctx context.Context) error, error) {
	res, err := resourceNewFunc(ctx,
		resource.WithAttributes(
			semconv.ServiceName(c.ServiceName),
			semconv.ServiceVersion(c.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdkTrace.NewBatchSpanProcessor(exporter)
	tracerProvider := sdkTrace.NewTracerProvider(
		sdkTrace.WithSampler(sdkTrace.AlwaysSample()),
		sdkTrace.WithResource(res),
		sdkTrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tracerProvider.Shutdown, nil
}
