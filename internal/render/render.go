// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Pages are rendered into a buffer rather than straight to the response so
// callers can hash the result for an ETag and store it in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"portfolio/internal/markdown"
	"portfolio/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

// Site identifies the portfolio owner in every page.
type Site struct {
	Name   string
	Author string
}

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string         // Page title for <title> tag
	Description string         // Meta description
	Site        Site           // Set by the Renderer
	Nav         []nav.Item     // Navigation menu for the current path
	Data        map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	site      Site
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout.
var standaloneTemplates = map[string]bool{
	"error": true,
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New(site Site) (*Renderer, error) {
	md := markdown.New(markdown.WithClasses(markdown.SiteClasses))

	r := &Renderer{
		site:      site,
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// markdown renders trusted content markdown into the page.
			"markdown": func(s string) template.HTML {
				return template.HTML(md.Render(s))
			},
			"join": strings.Join,
			"year": func() int { return time.Now().Year() },
			// selectedClass marks the active filter link.
			"selectedClass": func(current, target string) string {
				if current == target {
					return "selected"
				}
				return ""
			},
		},
	}

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	for _, page := range pages {
		name := strings.TrimPrefix(page, "templates/")
		if name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error
		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(templateFS, page)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/base.html", page,
			)
		}
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Has reports whether a page template with the given name exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Render executes the named page and returns the complete HTML document.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data == nil {
		data = &PageData{}
	}
	data.Site = rn.site

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
