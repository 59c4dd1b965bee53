package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aescanero/podprobe/internal/config"
	metrics "github.com/aescanero/podprobe/pkg/adapters/metrics/prometheus"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	cfg       *config.Config
	metrics   *metrics.Collector
	logger    *zap.Logger
	startTime time.Time
	version   string
	buildTime string
}

// Config holds HTTP server configuration
type Config struct {
	Config    *config.Config
	Metrics   *metrics.Collector
	Logger    *zap.Logger
	StartTime time.Time
	Version   string
	BuildTime string
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	// Set Gin mode based on logger
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(cfg.Logger))
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware(cfg.Metrics))

	s := &Server{
		router:    router,
		cfg:       cfg.Config,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		startTime: cfg.StartTime,
		version:   cfg.Version,
		buildTime: cfg.BuildTime,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Config.GetAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Config.Timeouts.Read,
		WriteTimeout: cfg.Config.Timeouts.Write,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Landing page
	s.router.GET("/", s.handleLanding)

	// Probes
	s.router.GET("/healthz", s.handleHealthz)
	s.router.GET("/readyz", s.handleReadyz)

	// Introspection
	s.router.GET("/info", s.handleInfo)

	// Platform validation
	s.router.GET("/fib", s.handleFib)
	s.router.GET("/crash", s.handleCrash)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// SetupWebSocket adds the WebSocket status stream handler to the server
func (s *Server) SetupWebSocket(handler interface{}) {
	if wsHandler, ok := handler.(interface {
		HandleStatusStream(*gin.Context)
	}); ok {
		s.router.GET("/ws", wsHandler.HandleStatusStream)
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

// uptime returns time elapsed since process start
func (s *Server) uptime() time.Duration {
	return time.Since(s.startTime)
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()))
	}
}
