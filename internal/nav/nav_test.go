package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestActiveSection(t *testing.T) {
	sections := []Section{
		{ID: "hero", Top: 0, Height: 500},
		{ID: "about", Top: 500, Height: 300},
		{ID: "contact", Top: 1000, Height: 200},
	}

	tests := []struct {
		name    string
		scrollY float64
		current string
		want    string
	}{
		{"top of page", 0, "hero", "hero"},
		{"offset crosses boundary", 400, "hero", "about"},
		{"just before boundary", 399, "about", "hero"},
		{"end is exclusive", 700, "hero", "hero"},
		{"gap keeps current", 750, "about", "about"},
		{"last section", 1050, "about", "contact"},
		{"past the end", 5000, "contact", "contact"},
		{"negative scroll", -150, "about", "about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveSection(tt.scrollY, sections, tt.current); got != tt.want {
				t.Errorf("ActiveSection(%v, %q) = %q, want %q", tt.scrollY, tt.current, got, tt.want)
			}
		})
	}
}

func TestActiveSectionFirstMatchWins(t *testing.T) {
	overlapping := []Section{
		{ID: "a", Top: 0, Height: 1000},
		{ID: "b", Top: 0, Height: 1000},
	}
	if got := ActiveSection(0, overlapping, ""); got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
	if got := ActiveSection(0, nil, "kept"); got != "kept" {
		t.Errorf("empty sections: got %q, want %q", got, "kept")
	}
}

func TestHomeLayoutCoversEverySection(t *testing.T) {
	var ids []string
	for _, s := range HomeLayout {
		ids = append(ids, s.ID)
	}
	want := []string{Hero, About, Skills, Projects, Blog, Contact}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("HomeLayout order (-want +got):\n%s", diff)
	}
	if got := ActiveSection(HomeLayout[2].Top, HomeLayout, Hero); got != Skills {
		t.Errorf("scrolling to the skills top: got %q", got)
	}
}

func TestMenu(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		active string
		want   []Item
	}{
		{
			name:   "home page uses anchors",
			path:   "/",
			active: About,
			want: []Item{
				{ID: Hero, Label: "Home", Href: "#hero"},
				{ID: About, Label: "About", Href: "#about", Active: true},
				{ID: Skills, Label: "Skills", Href: "#skills"},
				{ID: Projects, Label: "Projects", Href: "/projects"},
				{ID: Blog, Label: "Blog", Href: "/blog"},
				{ID: Contact, Label: "Contact", Href: "#contact"},
			},
		},
		{
			name:   "project detail links home",
			path:   "/projects/ai-analytics-dashboard",
			active: About,
			want: []Item{
				{ID: Hero, Label: "Home", Href: "/"},
				{ID: About, Label: "About", Href: "/#about"},
				{ID: Skills, Label: "Skills", Href: "/#skills"},
				{ID: Projects, Label: "Projects", Href: "/projects", Active: true},
				{ID: Blog, Label: "Blog", Href: "/blog"},
				{ID: Contact, Label: "Contact", Href: "/#contact"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Menu(tt.path, tt.active)); diff != "" {
				t.Errorf("Menu(%q, %q) (-want +got):\n%s", tt.path, tt.active, diff)
			}
		})
	}
}

func TestMenuPagePrefix(t *testing.T) {
	active := func(path string) []string {
		var ids []string
		for _, it := range Menu(path, "") {
			if it.Active {
				ids = append(ids, it.ID)
			}
		}
		return ids
	}

	if diff := cmp.Diff([]string{Blog}, active("/blog")); diff != "" {
		t.Errorf("/blog (-want +got):\n%s", diff)
	}
	if got := active("/blogroll"); got != nil {
		t.Errorf("/blogroll should activate nothing, got %v", got)
	}
}
