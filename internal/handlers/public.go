// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/cache"
	"portfolio/internal/nav"
	"portfolio/internal/render"
	"portfolio/internal/store"
)

// Listing sizes used by the public pages.
const (
	homeFeaturedProjects = 3
	homeLatestPosts      = 3
	relatedItems         = 3
)

// Skills shown on the home page.
var Skills = []string{
	"Go", "TypeScript", "React", "Next.js", "Node.js", "Python",
	"PostgreSQL", "Redis", "Docker", "AWS", "TensorFlow", "Solidity",
}

// Public groups handlers for the public-facing site. It checks the Valkey
// page cache before rendering, and stores rendered results on miss.
type Public struct {
	content   *store.ContentStore
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil when
// caching is disabled.
func NewPublic(content *store.ContentStore, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{
		content:   content,
		renderer:  renderer,
		pageCache: pageCache,
	}
}

// Homepage renders the single-page overview: hero, about, skills, featured
// projects, latest posts and contact. An optional y query parameter gives
// the scroll position to restore, which selects the active menu item.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	active := nav.Hero
	if y, err := strconv.ParseFloat(r.URL.Query().Get("y"), 64); err == nil {
		active = nav.ActiveSection(y, nav.HomeLayout, active)
	}
	key := homeCacheKey(active)
	if p.serveCached(w, r, key) {
		return
	}

	posts := p.content.Posts()
	if len(posts) > homeLatestPosts {
		posts = posts[:homeLatestPosts]
	}
	featured := p.content.FeaturedProjects()
	if len(featured) > homeFeaturedProjects {
		featured = featured[:homeFeaturedProjects]
	}

	p.page(w, r, http.StatusOK, "home", key, &render.PageData{
		Description: "Portfolio, projects and writing.",
		Nav:         nav.Menu(r.URL.Path, active),
		Data: map[string]any{
			"Skills":   Skills,
			"Projects": featured,
			"Posts":    posts,
		},
	})
}

// Projects renders the project listing, filtered by the category and q
// query parameters.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	params, msg := validateListing(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	key := listingCacheKey("/projects", params, p.content.ProjectCategories())
	if p.serveCached(w, r, key) {
		return
	}

	p.page(w, r, http.StatusOK, "projects", key, &render.PageData{
		Title:       "Projects",
		Description: "Things I have built.",
		Nav:         nav.Menu(r.URL.Path, ""),
		Data: map[string]any{
			"Categories": p.content.ProjectCategories(),
			"Category":   categoryOrAll(params.Category),
			"Query":      params.Query,
			"Projects":   p.content.FilterProjects(store.Filter(params)),
		},
	})
}

// Project renders a single project by its slug.
func (p *Public) Project(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	key := "/projects/" + slugParam
	if p.serveCached(w, r, key) {
		return
	}

	project, err := p.content.Project(slugParam)
	if errors.Is(err, store.ErrNotFound) {
		p.notFound(w, r, "/projects", fmt.Sprintf("There is no project called %q.", slugParam),
			p.content.SuggestProjects(slugParam, store.DefaultSuggestions))
		return
	}
	if err != nil {
		slog.Error("find project failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.page(w, r, http.StatusOK, "project", key, &render.PageData{
		Title:       project.Title,
		Description: project.Description,
		Nav:         nav.Menu(r.URL.Path, ""),
		Data: map[string]any{
			"Project": project,
			"Related": p.content.RelatedProjects(project.Slug, relatedItems),
		},
	})
}

// Blog renders the post listing, filtered by the category and q query
// parameters.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	params, msg := validateListing(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	key := listingCacheKey("/blog", params, p.content.PostCategories())
	if p.serveCached(w, r, key) {
		return
	}

	p.page(w, r, http.StatusOK, "blog", key, &render.PageData{
		Title:       "Blog",
		Description: "Notes on building for the web.",
		Nav:         nav.Menu(r.URL.Path, ""),
		Data: map[string]any{
			"Categories": p.content.PostCategories(),
			"Category":   categoryOrAll(params.Category),
			"Query":      params.Query,
			"Posts":      p.content.FilterPosts(store.Filter(params)),
		},
	})
}

// Post renders a single blog post by its slug.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	key := "/blog/" + slugParam
	if p.serveCached(w, r, key) {
		return
	}

	post, err := p.content.Post(slugParam)
	if errors.Is(err, store.ErrNotFound) {
		p.notFound(w, r, "/blog", fmt.Sprintf("There is no post called %q.", slugParam),
			p.content.SuggestPosts(slugParam, store.DefaultSuggestions))
		return
	}
	if err != nil {
		slog.Error("find post failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.page(w, r, http.StatusOK, "post", key, &render.PageData{
		Title:       post.Title,
		Description: post.Excerpt,
		Nav:         nav.Menu(r.URL.Path, ""),
		Data: map[string]any{
			"Post":    post,
			"Related": p.content.RelatedPosts(post.Slug, relatedItems),
		},
	})
}

// NotFound renders the generic 404 page for unmatched routes.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.notFound(w, r, "/", "The page you are looking for does not exist.", nil)
}

func (p *Public) notFound(w http.ResponseWriter, r *http.Request, base, msg string, suggestions []string) {
	p.page(w, r, http.StatusNotFound, "not_found", "", &render.PageData{
		Title: "Not Found",
		Nav:   nav.Menu(r.URL.Path, ""),
		Data: map[string]any{
			"Message":     msg,
			"Base":        base,
			"Suggestions": suggestions,
		},
	})
}

// serveCached writes the page cached under key if there is one. An empty
// key means the page is not cacheable.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if key == "" {
		return false
	}
	cached, ok := p.pageCache.Get(r.Context(), key)
	if !ok {
		return false
	}
	writeBody(w, r, http.StatusOK, contentTypeHTML, cached)
	return true
}

// page renders a template and sends it. Only successful pages with a
// cache key are cached.
func (p *Public) page(w http.ResponseWriter, r *http.Request, status int, name, key string, data *render.PageData) {
	rendered, err := p.renderer.Render(name, data)
	if err != nil {
		slog.Error("render page failed", "error", err, "template", name, "path", r.URL.Path)
		p.renderError(w, r)
		return
	}

	if status == http.StatusOK && key != "" {
		p.pageCache.Set(r.Context(), key, rendered)
	}
	writeBody(w, r, status, contentTypeHTML, rendered)
}

// renderError sends the standalone error page, falling back to plain text
// if even that cannot be rendered.
func (p *Public) renderError(w http.ResponseWriter, r *http.Request) {
	body, err := p.renderer.Render("error", &render.PageData{Title: "This page could not be rendered."})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeBody(w, r, http.StatusInternalServerError, contentTypeHTML, body)
}

// homeCacheKey keys the home page by the resolved active section rather
// than the raw scroll offset, so there is one entry per section.
func homeCacheKey(active string) string {
	if active == nav.Hero {
		return cache.PageKey("/", nil)
	}
	return cache.PageKey("/", url.Values{"section": {active}})
}

// listingCacheKey keys a listing by its category. Search results and
// unknown categories are not cached, which keeps the key space bounded by
// the content instead of by what clients send.
func listingCacheKey(path string, params listingParams, known []string) string {
	if params.Query != "" {
		return ""
	}
	category := params.Category
	if category == "" || category == store.AllCategories {
		return cache.PageKey(path, nil)
	}
	if !slices.Contains(known, category) {
		return ""
	}
	return cache.PageKey(path, url.Values{"category": {category}})
}

func categoryOrAll(category string) string {
	if category == "" {
		return store.AllCategories
	}
	return category
}
