// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/markdown"
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// maxRequestBody caps a markdown preview request, leaving room for the
// JSON envelope around the markdown itself.
const maxRequestBody = maxMarkdownLen + 4<<10

// API serves the content as JSON and renders markdown previews.
type API struct {
	content *store.ContentStore
	site    *markdown.Renderer
}

// NewAPI creates the JSON API handler group.
func NewAPI(content *store.ContentStore) *API {
	return &API{
		content: content,
		site:    markdown.New(markdown.WithClasses(markdown.SiteClasses)),
	}
}

// Projects lists projects. It accepts the same category and q parameters
// as the projects page, plus featured=true.
func (a *API) Projects(w http.ResponseWriter, r *http.Request) {
	params, msg := validateListing(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if msg != "" {
		writeJSONError(w, r, http.StatusBadRequest, msg)
		return
	}

	projects := a.content.FilterProjects(store.Filter(params))
	if r.URL.Query().Get("featured") == "true" {
		projects = keepFeatured(projects, func(p models.Project) bool { return p.Featured })
	}
	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, r, http.StatusOK, projects)
}

// Project returns one project, or a 404 with slug suggestions.
func (a *API) Project(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	project, err := a.content.Project(slugParam)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, r, http.StatusNotFound, apiError{
			Error:       "project not found",
			Suggestions: a.content.SuggestProjects(slugParam, store.DefaultSuggestions),
		})
		return
	}
	if err != nil {
		slog.Error("find project failed", "error", err, "slug", slugParam)
		writeJSONError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, project)
}

// Posts lists blog posts, newest first. It accepts category, q and
// featured=true.
func (a *API) Posts(w http.ResponseWriter, r *http.Request) {
	params, msg := validateListing(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if msg != "" {
		writeJSONError(w, r, http.StatusBadRequest, msg)
		return
	}

	posts := a.content.FilterPosts(store.Filter(params))
	if r.URL.Query().Get("featured") == "true" {
		posts = keepFeatured(posts, func(p models.BlogPost) bool { return p.Featured })
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	writeJSON(w, r, http.StatusOK, posts)
}

// Post returns one blog post, or a 404 with slug suggestions.
func (a *API) Post(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	post, err := a.content.Post(slugParam)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, r, http.StatusNotFound, apiError{
			Error:       "post not found",
			Suggestions: a.content.SuggestPosts(slugParam, store.DefaultSuggestions),
		})
		return
	}
	if err != nil {
		slog.Error("find post failed", "error", err, "slug", slugParam)
		writeJSONError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// markdownRequest is the JSON form of a preview request.
type markdownRequest struct {
	Markdown string `json:"markdown"`
	Classes  string `json:"classes"` // "site" (default) or "none"
	Blocks   bool   `json:"blocks"`  // also return the classified blocks
}

type markdownResponse struct {
	HTML   string           `json:"html"`
	Blocks []markdown.Block `json:"blocks,omitempty"`
}

// RenderMarkdown renders a markdown preview. A JSON body gets a JSON reply
// with the fragment under "html"; any other body is treated as raw markdown
// and answered with the bare HTML fragment.
func (a *API) RenderMarkdown(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeJSONError(w, r, http.StatusBadRequest, "could not read request body")
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != contentTypeJSON {
		if msg := validateMarkdown(string(raw)); msg != "" {
			writeJSONError(w, r, http.StatusBadRequest, msg)
			return
		}
		writeBody(w, r, http.StatusOK, contentTypeHTML, []byte(a.site.Render(string(raw))))
		return
	}

	var req markdownRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateMarkdown(req.Markdown); msg != "" {
		writeJSONError(w, r, http.StatusBadRequest, msg)
		return
	}

	var renderer *markdown.Renderer
	switch req.Classes {
	case "", "site":
		renderer = a.site
	case "none":
		renderer = markdown.New()
	default:
		writeJSONError(w, r, http.StatusBadRequest, `classes must be "site" or "none"`)
		return
	}

	blocks := markdown.Parse(req.Markdown)
	resp := markdownResponse{HTML: renderer.RenderBlocks(blocks)}
	if req.Blocks {
		resp.Blocks = blocks
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func keepFeatured[T any](items []T, featured func(T) bool) []T {
	var out []T
	for _, it := range items {
		if featured(it) {
			out = append(out, it)
		}
	}
	return out
}
