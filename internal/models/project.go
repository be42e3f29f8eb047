// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/slug"
)

// Project is a portfolio entry. Metadata comes from front matter; the
// markdown body of the source file becomes LongDescription.
type Project struct {
	Slug            string   `yaml:"slug" json:"slug"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"-" json:"long_description"`
	Tech            []string `yaml:"tech" json:"tech"`
	GitHub          string   `yaml:"github" json:"github,omitempty"`
	Live            string   `yaml:"live" json:"live,omitempty"`
	Featured        bool     `yaml:"featured" json:"featured"`
	Gradient        string   `yaml:"gradient" json:"gradient"`
	Category        string   `yaml:"category" json:"category"`
	Images          []string `yaml:"images" json:"images,omitempty"`
	Challenges      []string `yaml:"challenges" json:"challenges,omitempty"`
	Solutions       []string `yaml:"solutions" json:"solutions,omitempty"`
	Features        []string `yaml:"features" json:"features,omitempty"`
	Timeline        string   `yaml:"timeline" json:"timeline,omitempty"`
	TeamSize        string   `yaml:"team_size" json:"team_size,omitempty"`
	Role            string   `yaml:"role" json:"role,omitempty"`

	// Order positions the project in listings; lower comes first.
	Order int `yaml:"order" json:"-"`
}

// Validate checks the fields every listing and detail page relies on.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, validation.Required, validation.Match(slug.Pattern)),
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Category, validation.Required),
		validation.Field(&p.GitHub, validation.By(absoluteURL)),
		validation.Field(&p.Live, validation.By(absoluteURL)),
	)
}
