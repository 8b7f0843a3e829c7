// Package keys holds the context keys shared between the middleware, logger
// and context packages so none of them has to import the others for lookup.
package keys

type ContextKey string

const (
	RequestIdCtxKey      = ContextKey("request-id")
	LoggerCtxKey         = ContextKey("logger")
	ConfigCtxKey         = ContextKey("config")
	TracingHeadersCtxKey = ContextKey("tracingHeaders")
	WebTokenCtxKey       = ContextKey("webToken")
	UserIDCtxKey         = ContextKey("userId")
)
