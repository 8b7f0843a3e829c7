package traces

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-mesh/traceware/context/keys"
)

func TestSetTracingHeadersInContext(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracingHeaders, ok := r.Context().Value(keys.TracingHeadersCtxKey).(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "abc123", tracingHeaders["X-Request-Id"])
		assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", tracingHeaders["Traceparent"])
		assert.NotContains(t, tracingHeaders, "X-B3-Traceid")

		w.WriteHeader(http.StatusOK)
	})

	handlerToTest := SetTracingHeadersInContext()(nextHandler)

	req := httptest.NewRequest("GET", "http://testing", nil)
	req.Header.Set("X-Request-Id", "abc123")
	req.Header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	recorder := httptest.NewRecorder()

	handlerToTest.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetTracingHeadersInContextWithoutHeaders(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracingHeaders, ok := r.Context().Value(keys.TracingHeadersCtxKey).(map[string]string)
		require.True(t, ok)
		assert.Empty(t, tracingHeaders)

		w.WriteHeader(http.StatusOK)
	})

	handlerToTest := SetTracingHeadersInContext()(nextHandler)

	req := httptest.NewRequest("GET", "http://testing", nil)
	handlerToTest.ServeHTTP(httptest.NewRecorder(), req)
}
