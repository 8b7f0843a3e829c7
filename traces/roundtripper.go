package traces

import (
	"net/http"

	"github.com/platform-mesh/traceware/context/keys"
)

// TracingRoundTripper forwards the tracing headers captured by
// SetTracingHeadersInContext onto outbound requests, keeping downstream calls
// in the same trace as the request being handled.
type TracingRoundTripper struct {
	Base http.RoundTripper
}

func (t *TracingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	tracingHeaders, ok := req.Context().Value(keys.TracingHeadersCtxKey).(map[string]string)
	if ok {
		for k, v := range tracingHeaders {
			req.Header.Add(k, v)
		}
	}
	return t.Base.RoundTrip(req)
}
