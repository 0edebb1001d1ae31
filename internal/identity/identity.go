// Package identity resolves the owner of a request. Owners are opaque
// UUIDs supplied by the deployment's auth front end in the X-Owner-ID
// header; every storage row is scoped to one.
package identity

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// Header names the request header carrying the owner UUID.
const Header = "X-Owner-ID"

type contextKey struct{}

var ownerKey = contextKey{}

// WithOwner returns a context carrying the owner UUID.
func WithOwner(ctx context.Context, owner uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey, owner)
}

// Owner returns the request's owner UUID. The second return is false
// when the request did not pass through the middleware.
func Owner(ctx context.Context) (uuid.UUID, bool) {
	owner, ok := ctx.Value(ownerKey).(uuid.UUID)
	return owner, ok
}

// NewMiddleware returns a Huma middleware that requires a valid owner
// header on every request and stashes the parsed UUID in the context.
func NewMiddleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		raw := ctx.Header(Header)
		if raw == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing "+Header+" header")
			return
		}
		owner, err := uuid.FromString(raw)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid "+Header+" header", err)
			return
		}
		next(huma.WithValue(ctx, ownerKey, owner))
	}
}

// RequireOwner returns the request's owner or a 401 Huma error when
// the middleware did not run.
func RequireOwner(ctx context.Context) (uuid.UUID, error) {
	owner, ok := Owner(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing owner identity")
	}
	return owner, nil
}
