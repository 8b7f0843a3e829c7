package middleware

import (
	"net/http"

	pmerrors "github.com/platform-mesh/traceware/errors"
	"github.com/platform-mesh/traceware/logger"
)

// HandlerFunc is an http handler that reports failure as an error value. The
// error's status code (see errors.StatusCodeOf) determines the response
// status; errors without an attached status answer as 500.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorHandler adapts fn to a plain http.Handler. Successful outcomes pass
// through untouched. Failures are written as their derived status code with
// the standard status text body, logged at warn level for client errors and
// at error level (with the recorded stack, if any) for server errors.
func ErrorHandler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		err := fn(responseWriter, request)
		if err == nil {
			return
		}

		status := pmerrors.StatusCodeOf(err)
		log := logger.LoadLoggerFromContext(request.Context())
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Interface("stack", pmerrors.StackOf(err)).Int("status", status).Msg("request failed")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("request failed")
		}

		http.Error(responseWriter, http.StatusText(status), status)
	})
}
