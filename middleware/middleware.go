// Package middleware provides the request-instrumentation chain: a tracing
// span per request carrying structured request metadata, plus the supporting
// middlewares for trace propagation, request ids, request-scoped loggers,
// end user identity and panic recovery.
package middleware

import (
	"net/http"

	"github.com/platform-mesh/traceware/logger"
)

// CreateMiddleware returns the default chain in mount order (outermost
// first). The TracingLogger sits outside the recoverer so a panic converted
// to a 500 is still recorded on the request span.
func CreateMiddleware(serviceName string, log *logger.Logger) []func(http.Handler) http.Handler {
	tracing := NewTracingLogger(serviceName)

	return []func(http.Handler) http.Handler{
		SetOtelTracingContext(),
		StoreLoggerMiddleware(log),
		SetRequestId(),
		tracing.Handler,
		SetRequestIdInLogger(),
		StoreWebToken(),
		SentryRecoverer,
	}
}
