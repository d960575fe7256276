// Package cache provides the in-memory, tenant-keyed store for policy
// summaries.
//
// Each tenant maps to at most one entry, invalidated by a fixed TTL.
// Expired entries are deleted lazily on the next access; there is no
// background sweeper. The cache is process-local by design: no
// persistence across restarts and no coherence across instances.
package cache
