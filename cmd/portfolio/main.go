// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio server.
// It loads configuration and content, connects to the optional page cache,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/render"
	"portfolio/internal/router"
	"portfolio/internal/store"
	"portfolio/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"cache", cfg.CacheEnabled(),
	)

	// Content ships inside the binary; CONTENT_DIR overrides it so posts
	// can be edited without a rebuild.
	var contentFS fs.FS = web.ContentFS()
	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
	}
	content, err := store.Load(contentFS)
	if err != nil {
		slog.Error("failed to load content", "error", err, "dir", cfg.ContentDir)
		os.Exit(1)
	}
	projects, posts := content.Counts()
	slog.Info("content loaded", "projects", projects, "posts", posts)

	renderer, err := render.New(render.Site{Name: cfg.SiteName, Author: cfg.SiteAuthor})
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey for the full-page cache. Pages are rendered from
	// content loaded at startup, so anything cached by a previous process
	// is stale and gets dropped.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword)
		cancel()
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		pageCache = cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
		pageCache.InvalidateAll(context.Background())
		slog.Info("page cache enabled", "addr", cfg.ValkeyAddr(), "ttl", cfg.PageCacheTTL)
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	renderLimiter := middleware.NewRateLimiter(cfg.RenderRateLimit, time.Minute)
	renderLimiter.TrustProxy = cfg.TrustedProxy
	defer renderLimiter.Stop()

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(content, renderer, pageCache)
	apiHandlers := handlers.NewAPI(content)

	// Outside development the site is expected to sit behind HTTPS.
	r := router.New(content, publicHandlers, apiHandlers, renderLimiter, !cfg.IsDev())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
