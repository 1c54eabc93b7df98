package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Hostname string
	Port     int

	// Content
	GraphPath  string
	StaticDir  string
	WatchGraph bool

	// Logging
	LogFormat string
	LogLevel  string

	// HTTP server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func Load() Config {
	cfg := Config{
		Hostname: envOr("EN_HOSTNAME", "0.0.0.0"),
		Port:     envInt("EN_PORT", 3000),

		GraphPath:  envOr("EN_GRAPH", "./static/graph.toml"),
		StaticDir:  envOr("EN_STATIC_DIR", "./static"),
		WatchGraph: envBool("EN_WATCH", true),

		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "json")),
		LogLevel:  strings.ToLower(envOr("LOG_LEVEL", "info")),

		ReadTimeout:  envDuration("EN_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: envDuration("EN_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  envDuration("EN_IDLE_TIMEOUT", 60*time.Second),
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("EN_PORT out of range: %d", c.Port)
	}
	if c.GraphPath == "" {
		return fmt.Errorf("EN_GRAPH is required")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Address is the host:port the server listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Hostname, strconv.Itoa(c.Port))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
