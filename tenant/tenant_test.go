package tenant

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestIDFromContext(t *testing.T) {
	ctx := context.Background()

	if id := IDFromContext(ctx); id != "" {
		t.Errorf("IDFromContext on empty context = %q, want empty", id)
	}

	ctx = WithID(ctx, "company-1")
	if id := IDFromContext(ctx); id != "company-1" {
		t.Errorf("IDFromContext = %q, want %q", id, "company-1")
	}
}

func TestAuthTokenFromContext(t *testing.T) {
	ctx := context.Background()

	if token := AuthTokenFromContext(ctx); token != "" {
		t.Errorf("AuthTokenFromContext on empty context = %q, want empty", token)
	}

	ctx = WithAuthToken(ctx, "some-token")
	if token := AuthTokenFromContext(ctx); token != "some-token" {
		t.Errorf("AuthTokenFromContext = %q, want %q", token, "some-token")
	}
}

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"org_id claim", jwt.MapClaims{"org_id": "company-1"}, "company-1"},
		{"tenant_id claim", jwt.MapClaims{"tenant_id": "company-2"}, "company-2"},
		{"org_id wins over tenant_id", jwt.MapClaims{"org_id": "a", "tenant_id": "b"}, "a"},
		{"no tenant claim", jwt.MapClaims{"sub": "user-1"}, ""},
		{"empty org_id falls through", jwt.MapClaims{"org_id": "", "tenant_id": "c"}, "c"},
		{"non-string claim ignored", jwt.MapClaims{"org_id": 42}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signedToken(t, tt.claims)
			if got := DeriveID(token); got != tt.want {
				t.Errorf("DeriveID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveID_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"garbage", "not-a-jwt"},
		{"two segments", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveID(tt.token); got != "" {
				t.Errorf("DeriveID(%q) = %q, want empty", tt.token, got)
			}
		})
	}
}

func TestDeriveID_BearerPrefix(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"org_id": "company-1"})
	if got := DeriveID("Bearer " + token); got != "company-1" {
		t.Errorf("DeriveID with Bearer prefix = %q, want %q", got, "company-1")
	}
}

func TestResolve(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"org_id": "from-token"})

	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			"no identity sources",
			context.Background(),
			"", false,
		},
		{
			"direct tenant ID",
			WithID(context.Background(), "direct"),
			"direct", true,
		},
		{
			"derived from token",
			WithAuthToken(context.Background(), token),
			"from-token", true,
		},
		{
			"direct ID wins over token",
			WithAuthToken(WithID(context.Background(), "direct"), token),
			"direct", true,
		},
		{
			"token without tenant claim",
			WithAuthToken(context.Background(), signedToken(t, jwt.MapClaims{"sub": "u"})),
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
