// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Content comes from the embedded seed; the Valkey-backed page cache is
// only used by tests that ask for it, and those skip when Valkey is
// unavailable.
package handlers

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"portfolio/internal/cache"
	"portfolio/internal/render"
	"portfolio/internal/store"
	"portfolio/web"
)

// testEnv bundles the handler groups under test.
type testEnv struct {
	Content   *store.ContentStore
	Public    *Public
	API       *API
	PageCache *cache.PageCache
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newTestEnv builds handlers over the embedded seed content with caching
// disabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithCache(t, nil)
}

func newTestEnvWithCache(t *testing.T, pc *cache.PageCache) *testEnv {
	t.Helper()

	content, err := store.Load(web.ContentFS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	renderer, err := render.New(render.Site{Name: "John Developer", Author: "John Developer"})
	if err != nil {
		t.Fatalf("create renderer: %v", err)
	}

	return &testEnv{
		Content:   content,
		Public:    NewPublic(content, renderer, pc),
		API:       NewAPI(content),
		PageCache: pc,
	}
}

// testPageCache returns a page cache on Valkey DB 15, skipping the test
// when Valkey is not reachable.
func testPageCache(t *testing.T) *cache.PageCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	pc := cache.NewPageCache(client, time.Minute)
	pc.InvalidateAll(context.Background())
	t.Cleanup(func() {
		pc.InvalidateAll(context.Background())
		client.Close()
	})
	return pc
}

// withChiURLParam adds a chi URL parameter to a request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
