package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/policyops/cache"
)

// SummaryCacheChecker reports the summary cache's freshness for a set
// of tracked tenants.
//
// A deployment that knows its tenant population registers them here so
// readiness reflects summary availability: every tracked tenant cached
// and valid is healthy, gaps are degraded. The pipeline repopulates
// gaps lazily, so degraded means slower first calls, not an outage.
type SummaryCacheChecker struct {
	cache   *cache.SummaryCache
	tenants []string
}

var _ Checker = (*SummaryCacheChecker)(nil)

// NewSummaryCacheChecker creates the checker for the given tenants.
func NewSummaryCacheChecker(c *cache.SummaryCache, tenants []string) *SummaryCacheChecker {
	return &SummaryCacheChecker{cache: c, tenants: tenants}
}

// Name returns the checker name.
func (c *SummaryCacheChecker) Name() string { return "summary-cache" }

// Check inspects the cache entry of every tracked tenant.
func (c *SummaryCacheChecker) Check(ctx context.Context) Result {
	if len(c.tenants) == 0 {
		return Healthy("no tenants tracked")
	}

	fresh := 0
	var missing []string
	for _, tenantID := range c.tenants {
		stats := c.cache.Stats(tenantID)
		if stats.Reason == cache.ReasonIdentityUnavailable {
			return Unhealthy("tracked tenant list contains an empty ID", ErrNoTenantIdentity)
		}
		if stats.Cached && stats.IsValid {
			fresh++
			continue
		}
		missing = append(missing, tenantID)
	}

	details := map[string]any{
		"tracked": len(c.tenants),
		"fresh":   fresh,
		"entries": c.cache.Len(),
	}
	if fresh == len(c.tenants) {
		return Healthy("all tracked tenants have fresh summaries").WithDetails(details)
	}
	details["missing"] = missing
	return Degraded(
		fmt.Sprintf("%d of %d tracked tenants lack a fresh summary", len(missing), len(c.tenants)),
	).WithDetails(details)
}
