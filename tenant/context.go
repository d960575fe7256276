package tenant

import "context"

// Context keys for tenant-related values.
type contextKey int

const (
	tenantIDKey contextKey = iota
	authTokenKey
)

// WithID returns a new context with the given tenant ID attached.
func WithID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// IDFromContext retrieves the tenant ID from the context.
// Returns empty string if no tenant ID is present.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(tenantIDKey).(string)
	return id
}

// WithAuthToken returns a new context with the given auth token attached.
// The token is used as a fallback source of tenant identity.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey, token)
}

// AuthTokenFromContext retrieves the auth token from the context.
// Returns empty string if no token is present.
func AuthTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey).(string)
	return token
}

// Resolve determines the tenant identity for the current request.
//
// A directly-set tenant ID wins; otherwise the auth token's claims are
// consulted. Returns ("", false) when neither source yields an ID --
// callers must not cache results for such requests.
func Resolve(ctx context.Context) (string, bool) {
	if id := IDFromContext(ctx); id != "" {
		return id, true
	}
	if token := AuthTokenFromContext(ctx); token != "" {
		if id := DeriveID(token); id != "" {
			return id, true
		}
	}
	return "", false
}
