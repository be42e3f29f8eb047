package store

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"portfolio/internal/models"
)

// AllCategories is the category filter value that matches everything.
const AllCategories = "All"

// DefaultSuggestions is how many slugs Suggest returns when n is not positive.
const DefaultSuggestions = 3

// Filter narrows a listing by category and free-text search. Both
// conditions must hold. An empty Category or AllCategories matches any
// category; an empty Query matches any record.
type Filter struct {
	Category string
	Query    string
}

func (f Filter) matchesCategory(category string) bool {
	return f.Category == "" || f.Category == AllCategories || f.Category == category
}

// matchesText reports whether the query occurs, ignoring case, in any of
// the given fields.
func (f Filter) matchesText(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterProjects returns the projects matching f. The search covers the
// title and the short description.
func (s *ContentStore) FilterProjects(f Filter) []models.Project {
	return filter(s.projects, func(p models.Project) bool {
		return f.matchesCategory(p.Category) && f.matchesText(p.Title, p.Description)
	})
}

// FilterPosts returns the posts matching f. The search covers the title and
// the excerpt.
func (s *ContentStore) FilterPosts(f Filter) []models.BlogPost {
	return filter(s.posts, func(p models.BlogPost) bool {
		return f.matchesCategory(p.Category) && f.matchesText(p.Title, p.Excerpt)
	})
}

// SuggestProjects returns up to n project slugs that fuzzily match a slug
// that was not found, best match first.
func (s *ContentStore) SuggestProjects(slug string, n int) []string {
	slugs := make([]string, len(s.projects))
	for i, p := range s.projects {
		slugs[i] = p.Slug
	}
	return suggest(slug, slugs, n)
}

// SuggestPosts returns up to n post slugs that fuzzily match a slug that was
// not found, best match first.
func (s *ContentStore) SuggestPosts(slug string, n int) []string {
	slugs := make([]string, len(s.posts))
	for i, p := range s.posts {
		slugs[i] = p.Slug
	}
	return suggest(slug, slugs, n)
}

func suggest(pattern string, candidates []string, n int) []string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || len(candidates) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultSuggestions
	}

	matches := fuzzy.Find(pattern, candidates)
	out := make([]string, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
