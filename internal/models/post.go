// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/slug"
)

// wordsPerMinute is the reading speed used to estimate read time.
const wordsPerMinute = 200

// BlogPost is a blog article. Metadata comes from front matter; the
// markdown body of the source file becomes Content.
type BlogPost struct {
	Slug     string    `yaml:"slug" json:"slug"`
	Title    string    `yaml:"title" json:"title"`
	Excerpt  string    `yaml:"excerpt" json:"excerpt"`
	Content  string    `yaml:"-" json:"content"`
	Date     time.Time `yaml:"date" json:"date"`
	ReadTime string    `yaml:"read_time" json:"read_time"`
	Category string    `yaml:"category" json:"category"`
	Gradient string    `yaml:"gradient" json:"gradient"`
	Featured bool      `yaml:"featured" json:"featured"`
	Author   string    `yaml:"author" json:"author"`
	Tags     []string  `yaml:"tags" json:"tags,omitempty"`
}

// DisplayDate formats the post date the way listings show it, e.g. "Dec 15, 2024".
func (p BlogPost) DisplayDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("Jan 2, 2006")
}

// Validate checks the fields every listing and detail page relies on.
func (p BlogPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, validation.Required, validation.Match(slug.Pattern)),
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Excerpt, validation.Required),
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.Category, validation.Required),
	)
}

// EstimateReadTime returns a label like "8 min read" for a markdown body,
// rounding up and never going below one minute.
func EstimateReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// absoluteURL accepts an empty string or an absolute http(s) URL.
func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http or https URL")
	}
	return nil
}
