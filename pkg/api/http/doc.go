// Package http provides the HTTP API for podprobe.
//
// The server exposes endpoints for:
//   - Liveness and readiness probes
//   - Container identity introspection
//   - CPU stress and crash testing
//   - Prometheus metrics
package http
