package middleware

import (
	"net/http"

	"github.com/platform-mesh/traceware/logger"
)

// StoreLoggerMiddleware stores the given logger in the request context so
// handlers and later middlewares can load it with logger.LoadLoggerFromContext.
func StoreLoggerMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.SetLoggerInContext(r.Context(), log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
