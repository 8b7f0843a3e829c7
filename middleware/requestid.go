package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/platform-mesh/traceware/context/keys"
	"github.com/platform-mesh/traceware/logger"
)

const requestIdHeader = "X-Request-Id"

// SetRequestId returns middleware that ingests an inbound `X-Request-Id`
// header (used only when exactly one value is present) or generates a fresh
// UUID, and stores the id in the request context under keys.RequestIdCtxKey.
// When mounted before the TracingLogger the span's request_id attribute picks
// up the same id.
func SetRequestId() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			var requestId string
			if ids, ok := request.Header[requestIdHeader]; ok && len(ids) == 1 {
				requestId = ids[0]
			} else {
				requestId = uuid.NewString()
			}
			ctx = context.WithValue(ctx, keys.RequestIdCtxKey, requestId)
			next.ServeHTTP(responseWriter, request.WithContext(ctx))
		})
	}
}

// SetRequestIdInLogger returns middleware that replaces the context logger
// with a request-scoped child logger carrying the request id and, when a
// span is active, the trace and span ids. Mount it after StoreLoggerMiddleware
// and after the TracingLogger so both correlations are available.
func SetRequestIdInLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			log := logger.LoadLoggerFromContext(ctx)
			log = logger.NewRequestLoggerFromZerolog(ctx, log.Logger)
			ctx = logger.SetLoggerInContext(ctx, log)
			next.ServeHTTP(responseWriter, request.WithContext(ctx))
		})
	}
}

// GetRequestId returns the request id stored in ctx, or the empty string if
// none is present.
func GetRequestId(ctx context.Context) string {
	if val, ok := ctx.Value(keys.RequestIdCtxKey).(string); ok {
		return val
	}
	return ""
}
