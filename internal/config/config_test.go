// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
	"time"
)

var allEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"SITE_NAME", "SITE_AUTHOR", "CONTENT_DIR",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"PAGE_CACHE_TTL", "RENDER_RATE_LIMIT", "TRUSTED_PROXY",
}

// clearEnv sets every variable Load reads to empty, which envOrDefault
// treats the same as unset. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("SiteName", cfg.SiteName, "John Developer")
	check("SiteAuthor", cfg.SiteAuthor, "John Developer")
	check("ContentDir", cfg.ContentDir, "")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")

	if cfg.PageCacheTTL != 5*time.Minute {
		t.Errorf("PageCacheTTL = %v, want 5m", cfg.PageCacheTTL)
	}
	if cfg.RenderRateLimit != 30 {
		t.Errorf("RenderRateLimit = %d, want 30", cfg.RenderRateLimit)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled without VALKEY_HOST")
	}
	if cfg.TrustedProxy {
		t.Error("forwarding headers should not be trusted by default")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":          "127.0.0.1",
		"APP_PORT":          "9090",
		"APP_ENV":           "testing",
		"SITE_NAME":         "Jane Dev",
		"SITE_AUTHOR":       "Jane",
		"CONTENT_DIR":       "/srv/content",
		"VALKEY_HOST":       "cache.example.com",
		"VALKEY_PORT":       "6380",
		"VALKEY_PASSWORD":   "cachepass",
		"PAGE_CACHE_TTL":    "90s",
		"RENDER_RATE_LIMIT": "5",
		"TRUSTED_PROXY":     "true",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("SiteName", cfg.SiteName, "Jane Dev")
	check("SiteAuthor", cfg.SiteAuthor, "Jane")
	check("ContentDir", cfg.ContentDir, "/srv/content")
	check("ValkeyHost", cfg.ValkeyHost, "cache.example.com")
	check("ValkeyPort", cfg.ValkeyPort, "6380")
	check("ValkeyPassword", cfg.ValkeyPassword, "cachepass")
	check("ValkeyAddr", cfg.ValkeyAddr(), "cache.example.com:6380")

	if cfg.PageCacheTTL != 90*time.Second {
		t.Errorf("PageCacheTTL = %v, want 90s", cfg.PageCacheTTL)
	}
	if cfg.RenderRateLimit != 5 {
		t.Errorf("RenderRateLimit = %d, want 5", cfg.RenderRateLimit)
	}
	if !cfg.CacheEnabled() {
		t.Error("cache should be enabled with VALKEY_HOST and a positive TTL")
	}
	if !cfg.TrustedProxy {
		t.Error("TrustedProxy should be set from TRUSTED_PROXY")
	}
}

// TestLoad_Malformed verifies that unparseable values are load errors that
// name the offending variable.
func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"ttl not a duration", "PAGE_CACHE_TTL", "five minutes"},
		{"ttl negative", "PAGE_CACHE_TTL", "-1m"},
		{"rate limit not a number", "RENDER_RATE_LIMIT", "lots"},
		{"rate limit zero", "RENDER_RATE_LIMIT", "0"},
		{"trusted proxy not a bool", "TRUSTED_PROXY", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error should mention %s, got: %v", tt.key, err)
			}
		})
	}
}

// TestLoad_ZeroTTLDisablesCache verifies that a zero TTL turns caching off
// even when a Valkey host is configured.
func TestLoad_ZeroTTLDisablesCache(t *testing.T) {
	clearEnv(t)
	t.Setenv("VALKEY_HOST", "localhost")
	t.Setenv("PAGE_CACHE_TTL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled with a zero TTL")
	}
}

// TestLoad_ProductionRequiresValkeyPassword verifies that production mode
// refuses an unauthenticated Valkey connection.
func TestLoad_ProductionRequiresValkeyPassword(t *testing.T) {
	t.Run("rejects missing password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_HOST", "cache.internal")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should return an error when production Valkey has no password")
		}
		if !strings.Contains(err.Error(), "VALKEY_PASSWORD") {
			t.Errorf("error should mention VALKEY_PASSWORD, got: %v", err)
		}
	})

	t.Run("accepts real password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_HOST", "cache.internal")
		t.Setenv("VALKEY_PASSWORD", "s3cur3")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
	})

	t.Run("no valkey needs no password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
	})
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			if got := cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{env: "development", expected: true},
		{env: "production", expected: false},
		{env: "testing", expected: false},
		{env: "", expected: false},
		{env: "Development", expected: false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.expected {
				t.Errorf("IsDev() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestEnvOrDefault confirms that an explicitly set env var wins over the
// default, and that an empty var falls through to the default.
func TestEnvOrDefault(t *testing.T) {
	t.Run("set value wins", func(t *testing.T) {
		t.Setenv("APP_PORT", "3000")
		if got := envOrDefault("APP_PORT", "8080"); got != "3000" {
			t.Errorf("envOrDefault = %q, want %q", got, "3000")
		}
	})

	t.Run("empty value uses default", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		if got := envOrDefault("APP_PORT", "8080"); got != "8080" {
			t.Errorf("envOrDefault = %q, want %q", got, "8080")
		}
	})
}
