package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platform-mesh/traceware/context/keys"
)

// HealthzPath is exempt from instrumentation. Probes hit it at high frequency
// and their spans would only pollute the trace pipeline.
const HealthzPath = "/healthz"

const (
	tracerName      = "github.com/platform-mesh/traceware/middleware"
	requestSpanName = "Request"
)

// Span attribute keys carried by every request span. http.status_code and
// enduser.id are declared here but only written after span creation:
// the status once the downstream handler has resolved, the enduser id by
// whichever downstream layer knows it (see SetEnduser).
const (
	AttrKind        = attribute.Key("kind")
	AttrRequestID   = attribute.Key("request_id")
	AttrServiceName = attribute.Key("service.name")
	AttrUserAgent   = attribute.Key("http.user_agent")
	AttrMethod      = attribute.Key("http.method")
	AttrTarget      = attribute.Key("http.target")
	AttrRoute       = attribute.Key("http.route")
	AttrStatusCode  = attribute.Key("http.status_code")
	AttrEnduserID   = attribute.Key("enduser.id")
)

// TracingLogger wraps every request/response exchange in a tracing span that
// carries the request metadata as machine-parsable attributes, replacing
// regex-scraped access log lines. It is purely an observer: response bytes,
// headers and error payloads pass through unchanged.
//
// The zero value is usable but will report an empty service.name; prefer
// NewTracingLogger.
type TracingLogger struct {
	serviceName string
}

// NewTracingLogger returns a middleware factory bound to the given service
// name. The name is copied verbatim into the service.name attribute of every
// request span; an empty name is legal and simply shows up empty.
func NewTracingLogger(serviceName string) *TracingLogger {
	return &TracingLogger{serviceName: serviceName}
}

// Handler wraps next with request instrumentation. It may be called multiple
// times; every returned handler shares the immutable service name and owns
// its next reference.
//
// Requests to HealthzPath bypass instrumentation entirely and are delegated
// untouched. For every other request exactly one span is started, populated
// with kind, request_id, service.name, http.user_agent, http.method,
// http.target and http.route, and attached to the request context so that
// downstream handlers (and any goroutine they hand the context to) are
// attributed to it. Once next returns, the response status is recorded as
// http.status_code exactly once and the span ends.
//
// The request id is taken from the context when SetRequestId ran earlier in
// the chain, otherwise a fresh UUID is generated and stored back into the
// context so logs and span agree on one id.
func (t *TracingLogger) Handler(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		if request.URL.Path == HealthzPath {
			next.ServeHTTP(responseWriter, request)
			return
		}

		ctx := request.Context()

		requestId := GetRequestId(ctx)
		if requestId == "" {
			requestId = uuid.NewString()
			ctx = context.WithValue(ctx, keys.RequestIdCtxKey, requestId)
		}

		var route string
		if routeCtx := chi.RouteContext(ctx); routeCtx != nil {
			route = routeCtx.RoutePattern()
		}

		ctx, span := tracer.Start(ctx, requestSpanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				AttrKind.String("request"),
				AttrRequestID.String(requestId),
				AttrServiceName.String(t.serviceName),
				AttrUserAgent.String(request.Header.Get(headers.UserAgent)),
				AttrMethod.String(request.Method),
				AttrTarget.String(request.URL.Path),
				AttrRoute.String(route),
			),
		)
		defer span.End()

		recorder := newStatusRecorder(responseWriter)
		next.ServeHTTP(recorder, request.WithContext(ctx))

		// A zero status means the handler never wrote a response, usually
		// because the client disconnected mid-flight. The span then closes
		// with http.status_code left unset.
		if status := recorder.Status(); status != 0 {
			span.SetAttributes(AttrStatusCode.Int(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		}
	})
}

// SetEnduser records the authenticated end user on the request span of the
// given context. The enduser.id slot is reserved at span creation precisely
// so downstream layers can fill it without access to span internals.
func SetEnduser(ctx context.Context, enduserId string) {
	trace.SpanFromContext(ctx).SetAttributes(AttrEnduserID.String(enduserId))
}
