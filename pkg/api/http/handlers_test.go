package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aescanero/podprobe/internal/config"
	metrics "github.com/aescanero/podprobe/pkg/adapters/metrics/prometheus"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:     8080,
		LogLevel: "info",
		Fib:      config.FibConfig{DefaultN: 10, MaxN: 45},
		// Long delay so the crash goroutine never fires inside tests.
		Crash:  config.CrashConfig{Delay: time.Hour},
		Stream: config.StreamConfig{Interval: time.Second},
		Timeouts: config.TimeoutConfig{
			Read:            10 * time.Second,
			Write:           30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}

	return NewServer(&Config{
		Config:    cfg,
		Metrics:   metrics.NewCollector(time.Now()),
		Logger:    zap.NewNop(),
		StartTime: time.Now(),
		Version:   "test",
		BuildTime: "unknown",
	})
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ProbeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestReadyz(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/readyz")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ProbeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ready", resp.Status)
}

func TestUptimeNonDecreasing(t *testing.T) {
	s := newTestServer(t, nil)

	var first, second ProbeResponse
	require.NoError(t, json.Unmarshal(doGet(t, s, "/healthz").Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(doGet(t, s, "/healthz").Body.Bytes(), &second))

	assert.GreaterOrEqual(t, second.UptimeSeconds, first.UptimeSeconds)
}

func TestInfo(t *testing.T) {
	t.Setenv("POD_NAMESPACE", "demo")
	t.Setenv("SOME_SECRET_TOKEN", "hush")

	s := newTestServer(t, nil)

	w := doGet(t, s, "/info")
	require.Equal(t, http.StatusOK, w.Code)

	var info ContainerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))

	assert.NotEmpty(t, info.Hostname)
	assert.Equal(t, "test", info.Version)
	assert.Equal(t, "demo", info.Environment["POD_NAMESPACE"])
	assert.NotContains(t, info.Environment, "SOME_SECRET_TOKEN")
	assert.GreaterOrEqual(t, info.System.CPUCount, 1)
}

func TestFibDefault(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/fib")
	require.Equal(t, http.StatusOK, w.Code)

	var resp FibResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, uint64(10), resp.N)
	assert.Equal(t, uint64(55), resp.Result)
	assert.GreaterOrEqual(t, resp.ComputationMS, 0.0)
}

func TestFibExplicit(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		n    string
		want uint64
	}{
		{"0", 0},
		{"1", 1},
		{"20", 6765},
		{"30", 832040},
	}

	for _, tt := range tests {
		w := doGet(t, s, "/fib?n="+tt.n)
		require.Equal(t, http.StatusOK, w.Code)

		var resp FibResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tt.want, resp.Result, "fib(%s)", tt.n)
	}
}

func TestFibClampsToMax(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Fib.MaxN = 20
	})

	w := doGet(t, s, "/fib?n=400")
	require.Equal(t, http.StatusOK, w.Code)

	var resp FibResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, uint64(20), resp.N)
	assert.Equal(t, uint64(6765), resp.Result)
}

func TestFibRejectsBadInput(t *testing.T) {
	s := newTestServer(t, nil)

	for _, n := range []string{"abc", "-3", "1.5"} {
		w := doGet(t, s, "/fib?n="+n)
		require.Equal(t, http.StatusBadRequest, w.Code, "n=%s", n)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PARAMETER", resp.Error.Code)
	}
}

func TestCrashRespondsBeforeDying(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/crash")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Crashing in")
}

func TestMetricsExposition(t *testing.T) {
	s := newTestServer(t, nil)

	// Generate a request so the counter has a sample.
	doGet(t, s, "/healthz")

	w := doGet(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "app_uptime_seconds")
	assert.Contains(t, body, "app_memory_total_bytes")
	assert.Contains(t, body, "app_memory_used_bytes")
	assert.Contains(t, body, "app_cpu_count")
	assert.Contains(t, body,
		`podprobe_http_requests_total{method="GET",path="/healthz",status="200"} 1`)
}

func TestLandingPage(t *testing.T) {
	s := newTestServer(t, nil)

	w := doGet(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	for _, route := range []string{"/healthz", "/readyz", "/info", "/fib", "/crash", "/metrics"} {
		assert.Contains(t, body, route)
	}
}
