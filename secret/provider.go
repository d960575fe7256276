package secret

import (
	"context"
	"fmt"
	"os"
)

// Provider resolves secrets by reference string.
//
// Implementations must be safe for concurrent use and must not log
// secret values.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, ref string) (string, error)
}

// EnvProvider resolves references against the process environment.
// The ref is the variable name: "secretref:env:OPENAI_API_KEY".
type EnvProvider struct{}

var _ Provider = EnvProvider{}

// Name returns "env".
func (EnvProvider) Name() string { return "env" }

// Resolve looks the variable up. Missing or empty is an error: a
// credential reference that resolves to nothing is a misconfiguration.
func (EnvProvider) Resolve(ctx context.Context, ref string) (string, error) {
	value, ok := os.LookupEnv(ref)
	if !ok || value == "" {
		return "", fmt.Errorf("secret: environment variable %q is not set", ref)
	}
	return value, nil
}
