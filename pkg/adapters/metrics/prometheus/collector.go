package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aescanero/podprobe/internal/sysinfo"
)

// Collector exposes podprobe metrics through Prometheus.
//
// Request counters are incremented by HTTP middleware; the app_* system
// gauges are evaluated lazily at scrape time so /metrics always reflects
// the current container state.
type Collector struct {
	registry  *prometheus.Registry
	startTime time.Time

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	fibComputations *prometheus.CounterVec

	uptimeDesc   *prometheus.Desc
	memTotalDesc *prometheus.Desc
	memUsedDesc  *prometheus.Desc
	cpuCountDesc *prometheus.Desc
}

// NewCollector creates a Prometheus metrics collector with its own registry.
// startTime anchors the uptime gauge.
func NewCollector(startTime time.Time) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Collector{
		registry:  registry,
		startTime: startTime,

		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "podprobe_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "podprobe_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		),
		fibComputations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "podprobe_fib_computations_total",
				Help: "Total number of Fibonacci stress computations",
			},
			[]string{"clamped"},
		),

		uptimeDesc: prometheus.NewDesc(
			"app_uptime_seconds",
			"Time since application started",
			nil, nil,
		),
		memTotalDesc: prometheus.NewDesc(
			"app_memory_total_bytes",
			"Total system memory",
			nil, nil,
		),
		memUsedDesc: prometheus.NewDesc(
			"app_memory_used_bytes",
			"Used system memory",
			nil, nil,
		),
		cpuCountDesc: prometheus.NewDesc(
			"app_cpu_count",
			"Number of CPUs available",
			nil, nil,
		),
	}

	registry.MustRegister(c)
	return c
}

// Handler returns the HTTP handler serving the text exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.uptimeDesc
	ch <- c.memTotalDesc
	ch <- c.memUsedDesc
	ch <- c.cpuCountDesc
}

// Collect implements prometheus.Collector; it samples the system at scrape time
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := sysinfo.Collect()

	ch <- prometheus.MustNewConstMetric(c.uptimeDesc, prometheus.GaugeValue,
		time.Since(c.startTime).Seconds())
	ch <- prometheus.MustNewConstMetric(c.memTotalDesc, prometheus.GaugeValue,
		float64(snap.TotalMemoryBytes))
	ch <- prometheus.MustNewConstMetric(c.memUsedDesc, prometheus.GaugeValue,
		float64(snap.UsedMemoryBytes))
	ch <- prometheus.MustNewConstMetric(c.cpuCountDesc, prometheus.GaugeValue,
		float64(snap.CPUCount))
}

// RecordRequest records a completed HTTP request
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordFibComputation records a Fibonacci stress computation
func (c *Collector) RecordFibComputation(clamped bool) {
	c.fibComputations.WithLabelValues(strconv.FormatBool(clamped)).Inc()
}
