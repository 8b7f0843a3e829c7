package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// SetOtelTracingContext returns middleware that extracts W3C trace context
// from the inbound request headers into the request context. Mounted before
// the TracingLogger it makes the request span a child of the caller's span
// instead of a new trace root.
//
// Extraction runs through the global text map propagator; header handling
// (including malformed headers) is entirely the propagator's business.
func SetOtelTracingContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(request.Context(), propagation.HeaderCarrier(request.Header))
			next.ServeHTTP(responseWriter, request.WithContext(ctx))
		})
	}
}
