// Package tenant resolves the tenant identity that scopes cached
// policy summaries.
//
// Identity travels on the request context: either a tenant ID set
// directly by upstream middleware, or an auth token whose claims name
// the tenant. Resolve checks both sources in order. When neither
// yields an ID, callers must treat the request as identity-less and
// skip any tenant-keyed caching.
package tenant
