// Package prometheus implements metrics collection for podprobe.
//
// The collector owns its registry so callers can build isolated
// instances; the /metrics route serves it via promhttp.
package prometheus
