// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"portfolio/internal/models"
	"portfolio/internal/slug"
)

// Directories inside the content filesystem.
const (
	ProjectsDir = "projects"
	BlogDir     = "blog"
)

// Load reads every projects/*.md and blog/*.md file from fsys and builds a
// ContentStore from them. Each file carries YAML front matter for the
// record's metadata; the markdown below it becomes the project's long
// description or the post's content. A record without a slug gets one
// derived from its title, and a post without a read time gets an estimate.
func Load(fsys fs.FS) (*ContentStore, error) {
	projects, err := readRecords(fsys, ProjectsDir, func(p *models.Project, body string) {
		p.LongDescription = body
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Title)
		}
	})
	if err != nil {
		return nil, err
	}

	posts, err := readRecords(fsys, BlogDir, func(p *models.BlogPost, body string) {
		p.Content = body
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Title)
		}
		if p.ReadTime == "" {
			p.ReadTime = models.EstimateReadTime(body)
		}
	})
	if err != nil {
		return nil, err
	}

	return NewContentStore(projects, posts)
}

// readRecords decodes each markdown file in dir into a T. A missing
// directory yields no records.
func readRecords[T any](fsys fs.FS, dir string, finish func(*T, string)) ([]T, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []T
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		name := path.Join(dir, e.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var rec T
		body, err := frontmatter.Parse(bytes.NewReader(raw), &rec)
		if err != nil {
			return nil, fmt.Errorf("parse front matter in %s: %w", name, err)
		}
		finish(&rec, strings.TrimSpace(string(body)))
		out = append(out, rec)
	}
	return out, nil
}
