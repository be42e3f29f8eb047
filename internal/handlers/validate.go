package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for request inputs.
const (
	maxQueryLen    = 200
	maxCategoryLen = 100
	maxMarkdownLen = 64 << 10 // bytes accepted by the markdown preview
)

// listingParams is the parsed filter of a projects or blog listing.
type listingParams struct {
	Category string
	Query    string
}

// validateListing checks the category and search query of a listing
// request and returns the first error found.
func validateListing(category, query string) (listingParams, string) {
	category = strings.TrimSpace(category)
	query = strings.TrimSpace(query)

	if utf8.RuneCountInString(category) > maxCategoryLen {
		return listingParams{}, "Category is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return listingParams{}, "Search query is too long (max 200 characters)."
	}
	if !utf8.ValidString(category) || !utf8.ValidString(query) {
		return listingParams{}, "Parameters must be valid UTF-8."
	}
	return listingParams{Category: category, Query: query}, ""
}

// validateMarkdown checks a markdown preview body.
func validateMarkdown(body string) string {
	if len(body) > maxMarkdownLen {
		return "Markdown is too long (max 64 KiB)."
	}
	if !utf8.ValidString(body) {
		return "Markdown must be valid UTF-8."
	}
	return ""
}
