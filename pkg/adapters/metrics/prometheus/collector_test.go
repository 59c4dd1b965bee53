package prometheus

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, c *Collector) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestCollectorExposesSystemGauges(t *testing.T) {
	c := NewCollector(time.Now().Add(-5 * time.Second))

	body := gather(t, c)

	assert.Contains(t, body, "app_uptime_seconds")
	assert.Contains(t, body, "app_memory_total_bytes")
	assert.Contains(t, body, "app_memory_used_bytes")
	assert.Contains(t, body, "app_cpu_count")
	assert.Contains(t, body, "go_goroutines")
}

func TestCollectorRecordsRequests(t *testing.T) {
	c := NewCollector(time.Now())

	c.RecordRequest(http.MethodGet, "/healthz", http.StatusOK, 3*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/healthz", http.StatusOK, 2*time.Millisecond)

	body := gather(t, c)
	assert.Contains(t, body,
		`podprobe_http_requests_total{method="GET",path="/healthz",status="200"} 2`)
}

func TestCollectorRecordsFibComputations(t *testing.T) {
	c := NewCollector(time.Now())

	c.RecordFibComputation(true)
	c.RecordFibComputation(false)

	body := gather(t, c)
	assert.Contains(t, body, `podprobe_fib_computations_total{clamped="true"} 1`)
	assert.Contains(t, body, `podprobe_fib_computations_total{clamped="false"} 1`)
}

var uptimeLine = regexp.MustCompile(`(?m)^app_uptime_seconds ([0-9.e+-]+)$`)

func uptimeValue(t *testing.T, body string) float64 {
	t.Helper()

	m := uptimeLine.FindStringSubmatch(body)
	require.Len(t, m, 2, "app_uptime_seconds not found in exposition")

	v, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	return v
}

func TestUptimeIsNonDecreasing(t *testing.T) {
	c := NewCollector(time.Now())

	first := uptimeValue(t, gather(t, c))
	second := uptimeValue(t, gather(t, c))

	assert.GreaterOrEqual(t, second, first)
}
