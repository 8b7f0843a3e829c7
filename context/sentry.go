package context

import (
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/platform-mesh/traceware/logger"
)

// Recover can be used as deferred function to catch panics.
// It lives in the context package because it guards context shutdown, where
// no http middleware is in scope to do the recovering.
func Recover(log *logger.Logger) {
	if log == nil {
		log = logger.StdLogger
	}

	if err := recover(); err != nil {
		log.Error().Interface("panic", err).Interface("stack", debug.Stack()).Msg("recovered panic")
		sentry.CurrentHub().Recover(err)
		sentry.Flush(time.Second * 5)
	}
}
