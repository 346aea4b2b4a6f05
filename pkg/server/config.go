package server

import (
	"log/slog"
	"time"
)

// Config holds configuration for the preview server.
type Config struct {
	// Addr is the listen address. Default: "localhost:3000".
	Addr string

	// Pretty enables pretty-printed HTML output. Useful when reading
	// the preview source; dense output is the default.
	Pretty bool

	// EnableReload injects the live-reload client script into served
	// pages and exposes the reload WebSocket endpoint.
	EnableReload bool

	// ShutdownTimeout is the maximum time to wait for graceful
	// shutdown. Default: 5 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout guards against slow-header clients.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// IdleTimeout closes idle keep-alive connections.
	// Default: 2 minutes.
	IdleTimeout time.Duration

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:              "localhost:3000",
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// withDefaults fills in defaults for any unset fields.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	defaults := DefaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
