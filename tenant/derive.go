package tenant

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// tenantClaims are the claims checked, in order, when deriving a
// tenant ID from an auth token.
var tenantClaims = []string{"org_id", "tenant_id"}

// DeriveID extracts a tenant ID from a JWT auth token.
//
// The token signature is deliberately not verified: the ID scopes a
// cache key, it does not grant access. Verification belongs to the
// auth layer that issued the token in the first place. A malformed
// token or a token without a tenant claim yields empty string.
func DeriveID(token string) string {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ""
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	for _, claim := range tenantClaims {
		if id, ok := claims[claim].(string); ok && id != "" {
			return id
		}
	}
	return ""
}
