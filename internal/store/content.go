// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"portfolio/internal/models"
)

// ErrNotFound is returned when no record has the requested slug.
var ErrNotFound = errors.New("content not found")

// ContentStore holds the site's projects and blog posts in memory. It is
// built once at startup and never modified afterwards, so concurrent reads
// need no locking. Slices returned by its methods are fresh copies.
type ContentStore struct {
	projects   []models.Project
	posts      []models.BlogPost
	projectIdx map[string]int
	postIdx    map[string]int
}

// NewContentStore validates the records, rejects duplicate slugs and fixes
// the listing order: projects by Order then title, posts newest first.
func NewContentStore(projects []models.Project, posts []models.BlogPost) (*ContentStore, error) {
	s := &ContentStore{
		projects:   slices.Clone(projects),
		posts:      slices.Clone(posts),
		projectIdx: make(map[string]int, len(projects)),
		postIdx:    make(map[string]int, len(posts)),
	}

	for _, p := range s.projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Slug, err)
		}
	}
	for _, p := range s.posts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("post %q: %w", p.Slug, err)
		}
	}

	sort.SliceStable(s.projects, func(i, j int) bool {
		a, b := s.projects[i], s.projects[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Title < b.Title
	})
	sort.SliceStable(s.posts, func(i, j int) bool {
		a, b := s.posts[i], s.posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})

	for i, p := range s.projects {
		if _, dup := s.projectIdx[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		s.projectIdx[p.Slug] = i
	}
	for i, p := range s.posts {
		if _, dup := s.postIdx[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		s.postIdx[p.Slug] = i
	}

	return s, nil
}

// Project returns the project with the given slug.
func (s *ContentStore) Project(slug string) (models.Project, error) {
	i, ok := s.projectIdx[slug]
	if !ok {
		return models.Project{}, fmt.Errorf("project %q: %w", slug, ErrNotFound)
	}
	return s.projects[i], nil
}

// Projects returns every project in listing order.
func (s *ContentStore) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// FeaturedProjects returns the projects flagged as featured.
func (s *ContentStore) FeaturedProjects() []models.Project {
	return filter(s.projects, func(p models.Project) bool { return p.Featured })
}

// ProjectsByCategory returns the projects in exactly the given category.
func (s *ContentStore) ProjectsByCategory(category string) []models.Project {
	return filter(s.projects, func(p models.Project) bool { return p.Category == category })
}

// ProjectCategories lists the filter choices for the projects page:
// AllCategories first, then each category in listing order.
func (s *ContentStore) ProjectCategories() []string {
	return categories(s.projects, func(p models.Project) string { return p.Category })
}

// RelatedProjects returns up to n other projects sharing the category of
// the given one.
func (s *ContentStore) RelatedProjects(slug string, n int) []models.Project {
	p, err := s.Project(slug)
	if err != nil {
		return nil
	}
	related := filter(s.projects, func(o models.Project) bool {
		return o.Slug != slug && o.Category == p.Category
	})
	return limit(related, n)
}

// Post returns the blog post with the given slug.
func (s *ContentStore) Post(slug string) (models.BlogPost, error) {
	i, ok := s.postIdx[slug]
	if !ok {
		return models.BlogPost{}, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return s.posts[i], nil
}

// Posts returns every blog post, newest first.
func (s *ContentStore) Posts() []models.BlogPost {
	return slices.Clone(s.posts)
}

// FeaturedPosts returns the posts flagged as featured, newest first.
func (s *ContentStore) FeaturedPosts() []models.BlogPost {
	return filter(s.posts, func(p models.BlogPost) bool { return p.Featured })
}

// PostsByCategory returns the posts in exactly the given category.
func (s *ContentStore) PostsByCategory(category string) []models.BlogPost {
	return filter(s.posts, func(p models.BlogPost) bool { return p.Category == category })
}

// PostCategories lists the filter choices for the blog page.
func (s *ContentStore) PostCategories() []string {
	return categories(s.posts, func(p models.BlogPost) string { return p.Category })
}

// RelatedPosts returns up to n other posts sharing the category of the
// given one.
func (s *ContentStore) RelatedPosts(slug string, n int) []models.BlogPost {
	p, err := s.Post(slug)
	if err != nil {
		return nil
	}
	related := filter(s.posts, func(o models.BlogPost) bool {
		return o.Slug != slug && o.Category == p.Category
	})
	return limit(related, n)
}

// Counts returns the number of projects and posts.
func (s *ContentStore) Counts() (projects, posts int) {
	return len(s.projects), len(s.posts)
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func categories[T any](items []T, category func(T) string) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, it := range items {
		c := strings.TrimSpace(category(it))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
