package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/jellydator/ttlcache/v3"

	pmcontext "github.com/platform-mesh/traceware/context"
	"github.com/platform-mesh/traceware/jwt"
	"github.com/platform-mesh/traceware/logger"
)

const tokenAuthPrefix = "BEARER"

const webTokenCacheTTL = 5 * time.Minute

// StoreWebToken returns middleware that extracts a JWT from the request's
// `Authorization: Bearer <token>` header (scheme match is case-insensitive),
// stores the parsed token in the request context and records the token
// subject as enduser.id on the request span. Mount it after the
// TracingLogger so the span is already active.
//
// Parse results are cached per raw token for a few minutes since the same
// client commonly sends the same token on every request. Absent, malformed
// or non-Bearer headers leave the request untouched; a token that fails to
// parse is logged at debug level and otherwise ignored.
func StoreWebToken() func(http.Handler) http.Handler {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, jwt.WebToken](webTokenCacheTTL),
	)
	go cache.Start()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			fields := strings.Fields(request.Header.Get(headers.Authorization))
			if len(fields) == 2 && strings.EqualFold(fields[0], tokenAuthPrefix) {
				token, err := parseWebToken(cache, fields[1])
				if err != nil {
					log := logger.LoadLoggerFromContext(ctx)
					log.Debug().Err(err).Msg("cannot parse web token from authorization header")
				} else {
					ctx = pmcontext.AddWebTokenToContext(ctx, token)
					if token.Subject != "" {
						ctx = pmcontext.AddUserIDToContext(ctx, token.Subject)
						SetEnduser(ctx, token.Subject)
					}
				}
			}

			next.ServeHTTP(responseWriter, request.WithContext(ctx))
		})
	}
}

func parseWebToken(cache *ttlcache.Cache[string, jwt.WebToken], rawToken string) (jwt.WebToken, error) {
	if item := cache.Get(rawToken); item != nil {
		return item.Value(), nil
	}

	token, err := jwt.New(rawToken)
	if err != nil {
		return jwt.WebToken{}, err
	}

	cache.Set(rawToken, token, ttlcache.DefaultTTL)
	return token, nil
}
