// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Site identity shown in the layout and page titles.
	SiteName   string
	SiteAuthor string

	// ContentDir points at a directory holding projects/ and blog/. Empty
	// means the content embedded in the binary.
	ContentDir string

	// Valkey (Redis-compatible cache). An empty host disables page caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	PageCacheTTL   time.Duration

	// RenderRateLimit is the number of markdown preview requests one client
	// may make per minute.
	RenderRateLimit int

	// TrustedProxy means the server only receives traffic through a reverse
	// proxy that appends the client address to X-Forwarded-For. When false,
	// forwarding headers are ignored and clients are told apart by the
	// connection's remote address.
	TrustedProxy bool
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or a value critical in production is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteName:   envOrDefault("SITE_NAME", "John Developer"),
		SiteAuthor: envOrDefault("SITE_AUTHOR", "John Developer"),
		ContentDir: os.Getenv("CONTENT_DIR"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	ttl, err := time.ParseDuration(envOrDefault("PAGE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse PAGE_CACHE_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("PAGE_CACHE_TTL must not be negative, got %s", ttl)
	}
	cfg.PageCacheTTL = ttl

	limit, err := strconv.Atoi(envOrDefault("RENDER_RATE_LIMIT", "30"))
	if err != nil {
		return nil, fmt.Errorf("parse RENDER_RATE_LIMIT: %w", err)
	}
	if limit < 1 {
		return nil, fmt.Errorf("RENDER_RATE_LIMIT must be at least 1, got %d", limit)
	}
	cfg.RenderRateLimit = limit

	trusted, err := strconv.ParseBool(envOrDefault("TRUSTED_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("parse TRUSTED_PROXY: %w", err)
	}
	cfg.TrustedProxy = trusted

	if cfg.Env == "production" {
		if cfg.ValkeyHost != "" && cfg.ValkeyPassword == "" {
			return nil, fmt.Errorf("VALKEY_PASSWORD must be set in production when VALKEY_HOST is set")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// CacheEnabled reports whether rendered pages should be cached in Valkey.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != "" && c.PageCacheTTL > 0
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
