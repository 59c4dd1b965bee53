package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	metrics "github.com/aescanero/podprobe/pkg/adapters/metrics/prometheus"
)

// CORS middleware so the landing page can be poked from browser consoles
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware echoes an incoming X-Request-Id or generates one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		c.Next()
	}
}

// metricsMiddleware records request counts and latency per route
func metricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// unrouted request, avoid label cardinality explosion
			path = "unmatched"
		}

		collector.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
