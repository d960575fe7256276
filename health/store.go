package health

import (
	"context"

	"github.com/jonwraymond/policyops/summary"
)

// PolicyStoreChecker probes the upstream policy store.
type PolicyStoreChecker struct {
	store summary.PolicyStore

	// probeTenant is the tenant whose document the probe requests.
	// Empty requests the default document.
	probeTenant string
}

var _ Checker = (*PolicyStoreChecker)(nil)

// NewPolicyStoreChecker creates the checker. probeTenant may be empty.
func NewPolicyStoreChecker(store summary.PolicyStore, probeTenant string) *PolicyStoreChecker {
	return &PolicyStoreChecker{store: store, probeTenant: probeTenant}
}

// Name returns the checker name.
func (c *PolicyStoreChecker) Name() string { return "policy-store" }

// Check fetches the probe document. A reachable store with no policy
// for the probe tenant is degraded, not unhealthy: the transport works
// but summaries for that tenant will be empty.
func (c *PolicyStoreChecker) Check(ctx context.Context) Result {
	text, err := c.store.FetchRawPolicy(ctx, c.probeTenant)
	if err != nil {
		return Unhealthy("policy store unreachable", err)
	}
	if text == "" {
		return Degraded("policy store reachable but returned no policy")
	}
	return Healthy("policy store reachable").WithDetails(map[string]any{
		"policy_chars": len(text),
	})
}
