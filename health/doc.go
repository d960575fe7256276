// Package health reports the liveness and readiness of the policy
// summary service.
//
// A Checker probes one dependency: the summary cache's freshness for
// the tenants a deployment tracks, or the upstream policy store's
// reachability. The Aggregator fans the registered checkers out in
// parallel and folds their results into one overall Status, which the
// HTTP handlers expose as /healthz, /readyz, and /health endpoints.
package health
