// Package nav builds the site navigation: which home page section is
// active for a scroll position, and the menu items for a given page.
package nav

import "strings"

// Section IDs on the home page, in page order.
const (
	Hero     = "hero"
	About    = "about"
	Skills   = "skills"
	Projects = "projects"
	Blog     = "blog"
	Contact  = "contact"
)

// scrollOffset shifts the sampled point below the fixed navigation bar.
const scrollOffset = 100

// Section is the vertical extent of one home page section, in pixels from
// the top of the document.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// HomeLayout is the nominal geometry of the home page sections, used when
// the server has to pick an active section without a browser measuring it.
var HomeLayout = []Section{
	{ID: Hero, Top: 0, Height: 800},
	{ID: About, Top: 800, Height: 800},
	{ID: Skills, Top: 1600, Height: 800},
	{ID: Projects, Top: 2400, Height: 1000},
	{ID: Blog, Top: 3400, Height: 1000},
	{ID: Contact, Top: 4400, Height: 800},
}

// ActiveSection returns the ID of the first section whose [Top, Top+Height)
// range contains scrollY plus the navigation offset. If no section does,
// current is returned unchanged.
func ActiveSection(scrollY float64, sections []Section, current string) string {
	point := scrollY + scrollOffset
	for _, s := range sections {
		if point >= s.Top && point < s.Top+s.Height {
			return s.ID
		}
	}
	return current
}

// Item is one entry of the navigation menu.
type Item struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

type entry struct {
	id, label string
	page      string // non-empty for items that are pages of their own
}

var entries = []entry{
	{id: Hero, label: "Home"},
	{id: About, label: "About"},
	{id: Skills, label: "Skills"},
	{id: Projects, label: "Projects", page: "/projects"},
	{id: Blog, label: "Blog", page: "/blog"},
	{id: Contact, label: "Contact"},
}

// Menu returns the navigation items for the page at path. On the home page
// section items are in-page anchors and active marks the section item;
// elsewhere they link back to the home page. Page items are active when
// path is the page or below it.
func Menu(path, active string) []Item {
	home := path == "/" || path == ""
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		it := Item{ID: e.id, Label: e.label}
		switch {
		case e.page != "":
			it.Href = e.page
			it.Active = path == e.page || strings.HasPrefix(path, e.page+"/")
		case home:
			it.Href = "#" + e.id
			it.Active = e.id == active
		case e.id == Hero:
			it.Href = "/"
		default:
			it.Href = "/#" + e.id
		}
		items = append(items, it)
	}
	return items
}
