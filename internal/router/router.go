// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio site: the public pages, the JSON API and static assets.
package router

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/store"
	"portfolio/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. renderLimiter guards the markdown preview
// endpoint, the only route that does work proportional to its input.
// secure enables headers that only make sense behind HTTPS.
func New(content *store.ContentStore, public *handlers.Public, api *handlers.API, renderLimiter *middleware.RateLimiter, secure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(secure))
	r.Use(chimw.GetHead)

	r.Get("/health", healthHandler(content))

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: static assets missing from binary: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Public pages.
	r.Get("/", public.Homepage)
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", public.Projects)
		r.Get("/{slug}", public.Project)
	})
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", public.Blog)
		r.Get("/{slug}", public.Post)
	})

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", api.Projects)
		r.Get("/projects/{slug}", api.Project)
		r.Get("/posts", api.Posts)
		r.Get("/posts/{slug}", api.Post)

		r.Group(func(r chi.Router) {
			if renderLimiter != nil {
				r.Use(renderLimiter.Middleware)
			}
			r.Post("/markdown", api.RenderMarkdown)
		})
	})

	r.NotFound(public.NotFound)

	return r
}

// healthHandler reports liveness along with how much content is loaded.
func healthHandler(content *store.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, posts := content.Counts()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"projects": projects,
			"posts":    posts,
		})
	}
}
