package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/platform-mesh/traceware/logger"
)

// SentryRecoverer recovers panics from downstream handlers (except
// http.ErrAbortHandler), logs them with the stack, reports them to the
// current Sentry hub and answers 500. Mounted inside the TracingLogger the
// written 500 is observed and recorded on the request span like any other
// downstream failure.
func SentryRecoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil && err != http.ErrAbortHandler {
				log := logger.LoadLoggerFromContext(r.Context())
				log.Error().Interface("panic", err).Interface("stack", debug.Stack()).Msg("recovered http panic")
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)

				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
