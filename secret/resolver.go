package secret

import (
	"context"
	"fmt"
	"strings"
)

const refPrefix = "secretref:"

// Resolver resolves secret references using registered providers.
//
// Values are first expanded strictly against the environment; a value
// that then reads "secretref:<provider>:<ref>" is handed to the named
// provider. Anything else passes through unchanged.
type Resolver struct {
	providers map[string]Provider
}

// NewResolver creates a resolver over the given providers.
func NewResolver(providers ...Provider) *Resolver {
	r := &Resolver{providers: make(map[string]Provider)}
	for _, p := range providers {
		if p != nil {
			r.providers[p.Name()] = p
		}
	}
	return r
}

// Register adds a provider, replacing any provider of the same name.
func (r *Resolver) Register(provider Provider) {
	if provider != nil {
		r.providers[provider.Name()] = provider
	}
}

// ResolveValue resolves environment expansions and secret references
// in value.
func (r *Resolver) ResolveValue(ctx context.Context, value string) (string, error) {
	expanded, err := ExpandEnvStrict(value)
	if err != nil {
		return "", err
	}

	providerName, ref, ok := ParseSecretRef(expanded)
	if !ok {
		return expanded, nil
	}

	provider, registered := r.providers[providerName]
	if !registered {
		return "", fmt.Errorf("secret: provider %q is not registered", providerName)
	}
	return provider.Resolve(ctx, ref)
}

// ParseSecretRef parses a reference of the form
// "secretref:<provider>:<ref>".
func ParseSecretRef(value string) (provider, ref string, ok bool) {
	if !strings.HasPrefix(value, refPrefix) {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(value, refPrefix), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

var defaultResolver = NewResolver(EnvProvider{})

// Resolve resolves value with the default resolver, which carries only
// the env provider.
func Resolve(ctx context.Context, value string) (string, error) {
	return defaultResolver.ResolveValue(ctx, value)
}
