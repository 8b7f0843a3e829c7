package context

import (
	"context"
	"fmt"

	"github.com/platform-mesh/traceware/context/keys"
	"github.com/platform-mesh/traceware/jwt"
)

// AddWebTokenToContext stores an already parsed web token in the context.
func AddWebTokenToContext(ctx context.Context, token jwt.WebToken) context.Context {
	return context.WithValue(ctx, keys.WebTokenCtxKey, token)
}

// GetWebTokenFromContext returns the web token stored in the context, or an
// error when none (or something of the wrong type) is stored.
func GetWebTokenFromContext(ctx context.Context) (jwt.WebToken, error) {
	token, ok := ctx.Value(keys.WebTokenCtxKey).(jwt.WebToken)
	if !ok {
		return token, fmt.Errorf("someone stored a wrong value in the [%s] key with type [%T], expected [jwt.WebToken]", keys.WebTokenCtxKey, ctx.Value(keys.WebTokenCtxKey))
	}

	return token, nil
}

// AddUserIDToContext stores the end user id in the context.
func AddUserIDToContext(ctx context.Context, userId string) context.Context {
	return context.WithValue(ctx, keys.UserIDCtxKey, userId)
}

// GetUserIDFromContext returns the end user id stored in the context, or an
// error when none (or something of the wrong type) is stored.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userId, ok := ctx.Value(keys.UserIDCtxKey).(string)
	if !ok {
		return userId, fmt.Errorf("someone stored a wrong value in the [%s] key with type [%T], expected [string]", keys.UserIDCtxKey, ctx.Value(keys.UserIDCtxKey))
	}

	return userId, nil
}
