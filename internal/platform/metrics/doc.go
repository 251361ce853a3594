// Package metrics holds the process-wide Prometheus registry, the HTTP
// instrumentation middleware and the /metrics handler.
package metrics
