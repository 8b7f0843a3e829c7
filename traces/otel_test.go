package traces

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"
)

type mockExporter struct {
	sdkTrace.SpanExporter
}

func TestConfig_initProvider_Success(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	}
	exporter := &mockExporter{}

	shutdown, err := cfg.initProvider(ctx, exporter)
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)
}

func TestConfig_initProvider_ResourceError(t *testing.T) {
	cfg := Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	}
	exporter := &mockExporter{}
	ctx := context.Background()

	orig := resourceNewFunc
	resourceNewFunc = func(ctx context.Context, opts ...resource.Option) (*resource.Resource, error) {
		return nil, errors.New("resource error")
	}
	defer func() { resourceNewFunc = orig }()

	shutdown, err := cfg.initProvider(ctx, exporter)
	assert.Error(t, err)
	assert.Nil(t, shutdown)
}

func TestInitLocalProvider(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	}

	shutdown, err := InitLocalProvider(ctx, cfg)
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)
	assert.NoError(t, shutdown(ctx))
}

func TestInitProvider_UnreachableCollector(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Endpoint:       "localhost:1",
	}

	_, err := InitProvider(ctx, cfg)
	assert.Error(t, err)
}
