package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/aescanero/podprobe/internal/stress"
)

// Config holds all configuration for the podprobe service
type Config struct {
	// Server configuration
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Fibonacci stress endpoint
	Fib FibConfig

	// Crash endpoint
	Crash CrashConfig

	// WebSocket status stream
	Stream StreamConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// FibConfig bounds the /fib CPU stress endpoint
type FibConfig struct {
	DefaultN uint64 `env:"FIB_DEFAULT_N" envDefault:"10"`
	MaxN     uint64 `env:"FIB_MAX_N" envDefault:"45"`
}

// CrashConfig controls the intentional crash endpoint
type CrashConfig struct {
	// Delay between sending the response and panicking, so the
	// client sees the 200 before the process dies.
	Delay time.Duration `env:"CRASH_DELAY" envDefault:"100ms"`
}

// StreamConfig controls the WebSocket status stream
type StreamConfig struct {
	Interval time.Duration `env:"STATUS_STREAM_INTERVAL" envDefault:"1s"`
}

// TimeoutConfig holds server timeout configurations
type TimeoutConfig struct {
	Read            time.Duration `env:"TIMEOUT_READ" envDefault:"10s"`
	Write           time.Duration `env:"TIMEOUT_WRITE" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	// fib(n) overflows uint64 past stress.MaxFib
	if c.Fib.MaxN > stress.MaxFib {
		return fmt.Errorf("FIB_MAX_N %d exceeds maximum %d", c.Fib.MaxN, stress.MaxFib)
	}
	if c.Fib.DefaultN > c.Fib.MaxN {
		return fmt.Errorf("FIB_DEFAULT_N %d exceeds FIB_MAX_N %d", c.Fib.DefaultN, c.Fib.MaxN)
	}

	if c.Crash.Delay < 0 {
		return fmt.Errorf("crash delay must not be negative")
	}
	if c.Stream.Interval <= 0 {
		return fmt.Errorf("status stream interval must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetAddr returns the HTTP server listen address
func (c *Config) GetAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
