// Package metrics exposes Prometheus instrumentation for the movie API.
//
// A [Metrics] value owns its own registry, so several instances (one per
// test, for example) never collide on metric names. The HTTP layer records
// one observation per request through [Metrics.ObserveRequest] and serves
// the registry on GET /metrics through [Metrics.Handler].
package metrics
