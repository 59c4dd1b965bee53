package http

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aescanero/podprobe/internal/stress"
	"github.com/aescanero/podprobe/internal/sysinfo"
)

// ProbeResponse is the payload served by the liveness and readiness probes
type ProbeResponse struct {
	Status        string `json:"status"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

// ContainerInfo describes the runtime identity of the container
type ContainerInfo struct {
	Hostname    string            `json:"hostname"`
	UserID      int               `json:"user_id"`
	GroupID     int               `json:"group_id"`
	Version     string            `json:"version"`
	BuildTime   string            `json:"build_time"`
	Environment map[string]string `json:"environment"`
	System      sysinfo.Snapshot  `json:"system"`
}

// FibResponse is the result of a Fibonacci stress computation
type FibResponse struct {
	N             uint64  `json:"n"`
	Result        uint64  `json:"result"`
	ComputationMS float64 `json:"computation_ms"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Environment variables surfaced on /info. Everything else stays hidden
// so secrets mounted as env vars never leak through introspection.
var envAllowPrefixes = []string{"KUBERNETES_", "OPENSHIFT_", "POD_"}

var envAllowExact = map[string]bool{
	"HOSTNAME":    true,
	"HOME":        true,
	"PATH":        true,
	"APP_VERSION": true,
	"LOG_LEVEL":   true,
}

// handleHealthz handles liveness probe requests
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, ProbeResponse{
		Status:        "ok",
		UptimeSeconds: uint64(s.uptime().Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReadyz handles readiness probe requests
func (s *Server) handleReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, ProbeResponse{
		Status:        "ready",
		UptimeSeconds: uint64(s.uptime().Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// handleInfo handles container identity introspection
func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ContainerInfo{
		Hostname:    hostname(),
		UserID:      os.Getuid(),
		GroupID:     os.Getgid(),
		Version:     s.version,
		BuildTime:   s.buildTime,
		Environment: filterEnvironment(os.Environ()),
		System:      sysinfo.Collect(),
	})
}

// handleFib handles the CPU stress endpoint
func (s *Server) handleFib(c *gin.Context) {
	n := s.cfg.Fib.DefaultN

	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: ErrorDetail{
					Code:    "INVALID_PARAMETER",
					Message: "n must be a non-negative integer",
				},
			})
			return
		}
		n = parsed
	}

	clamped := n > s.cfg.Fib.MaxN
	n = stress.Clamp(n, s.cfg.Fib.MaxN)

	start := time.Now()
	result := stress.Fib(n)
	elapsed := time.Since(start)

	s.metrics.RecordFibComputation(clamped)

	c.JSON(http.StatusOK, FibResponse{
		N:             n,
		Result:        result,
		ComputationMS: float64(elapsed.Nanoseconds()) / 1e6,
	})
}

// handleCrash responds, then kills the process so the orchestrator
// restart policy can be observed
func (s *Server) handleCrash(c *gin.Context) {
	delay := s.cfg.Crash.Delay

	s.logger.Warn("crash requested",
		zap.Duration("delay", delay),
		zap.String("client_ip", c.ClientIP()))

	// Panic from a detached goroutine: gin's Recovery only covers the
	// handler goroutine, so this takes the whole process down after
	// the response has been flushed.
	go func() {
		time.Sleep(delay)
		panic("intentional crash to test restart policy")
	}()

	c.String(http.StatusOK, "Crashing in %s... watch the container restart.", delay)
}

// filterEnvironment keeps only allowlisted variables from environ entries
func filterEnvironment(environ []string) map[string]string {
	filtered := make(map[string]string)

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		if envAllowExact[key] {
			filtered[key] = value
			continue
		}
		for _, prefix := range envAllowPrefixes {
			if strings.HasPrefix(key, prefix) {
				filtered[key] = value
				break
			}
		}
	}

	return filtered
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
