// Package observe provides observability primitives for the policy
// summary pipeline.
//
// It is a pure instrumentation library: no execution, no transport, no
// I/O beyond exporter setup. The summary service and the validation
// gate wire the observer's logger, tracer, and metrics into their own
// call paths.
package observe
