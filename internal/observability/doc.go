// Package observability wires Prometheus metrics and OpenTelemetry tracing
// around maze generation. Library packages stay free of both: carve only
// emits spans through the global otel provider and calls an optional
// carve.Observer, which CarveCollector implements.
package observability
