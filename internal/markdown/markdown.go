// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts the small markdown dialect used in project and
// blog post bodies into HTML fragments.
//
// Rendering happens in two steps: Parse classifies lines into blocks
// (headings, fenced code, lists, paragraphs) and ParseInline scans the text
// of each block into spans (code, strong, emphasis, links). Render never
// fails; syntax it does not recognize is left as literal text.
//
// Prose is emitted as-is and is not sanitized. Bodies are written by the
// site author, never submitted by visitors. Code contents are escaped so
// they display as text.
package markdown

import (
	"html"
	"strings"
)

// Classes maps each emitted element to the value of its class attribute.
// An empty value omits the attribute.
type Classes struct {
	H1        string
	H2        string
	H3        string
	Pre       string
	CodeBlock string // the <code> inside <pre>
	Code      string // inline <code>
	Strong    string
	Em        string
	Link      string
	Paragraph string
	List      string
	ListItem  string
}

// SiteClasses is the Tailwind styling used by the public site.
var SiteClasses = Classes{
	H1:        "text-4xl font-bold mb-8 bg-gradient-to-r from-purple-400 to-pink-400 bg-clip-text text-transparent",
	H2:        "text-3xl font-bold mb-6 text-white",
	H3:        "text-2xl font-bold mb-4 text-white",
	Pre:       "bg-gray-900 rounded-lg p-4 mb-6 overflow-x-auto",
	CodeBlock: "text-green-400",
	Code:      "bg-gray-800 text-purple-300 px-2 py-1 rounded text-sm",
	Strong:    "font-bold text-white",
	Em:        "italic text-white/90",
	Link:      "text-purple-400 hover:text-purple-300 underline",
	Paragraph: "text-white/80 mb-4 leading-relaxed",
	List:      "list-disc list-inside mb-6 space-y-2",
	ListItem:  "text-white/80 mb-2",
}

// Renderer turns markdown into HTML using a fixed class table. A Renderer
// holds no mutable state and is safe for concurrent use.
type Renderer struct {
	classes Classes
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClasses sets the class attributes emitted on each element.
func WithClasses(c Classes) Option {
	return func(r *Renderer) {
		r.classes = c
	}
}

// New creates a Renderer. Without options, elements carry no classes.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var plain = New()

// Render converts markdown into an unstyled HTML fragment.
func Render(input string) string {
	return plain.Render(input)
}

// Render converts markdown into an HTML fragment. Blocks are separated by
// newlines. Empty or blank input yields an empty fragment.
func (r *Renderer) Render(input string) string {
	return r.RenderBlocks(Parse(input))
}

// RenderBlocks renders an already classified block sequence.
func (r *Renderer) RenderBlocks(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		r.writeBlock(&sb, b)
	}
	return sb.String()
}

func (r *Renderer) writeBlock(sb *strings.Builder, b Block) {
	switch b.Kind {
	case Heading:
		tag, class := "h1", r.classes.H1
		switch b.Level {
		case 2:
			tag, class = "h2", r.classes.H2
		case 3:
			tag, class = "h3", r.classes.H3
		}
		writeOpen(sb, tag, class)
		r.writeSpans(sb, ParseInline(b.Text))
		sb.WriteString("</" + tag + ">")

	case CodeBlock:
		writeOpen(sb, "pre", r.classes.Pre)
		writeOpen(sb, "code", r.classes.CodeBlock)
		sb.WriteString(escapeCode(b.Text))
		sb.WriteString("</code></pre>")

	case List:
		writeOpen(sb, "ul", r.classes.List)
		for _, item := range b.Items {
			sb.WriteByte('\n')
			writeOpen(sb, "li", r.classes.ListItem)
			r.writeSpans(sb, ParseInline(item))
			sb.WriteString("</li>")
		}
		sb.WriteString("\n</ul>")

	default:
		writeOpen(sb, "p", r.classes.Paragraph)
		r.writeSpans(sb, ParseInline(b.Text))
		sb.WriteString("</p>")
	}
}

func (r *Renderer) writeSpans(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s.Kind {
		case Text:
			sb.WriteString(s.Text)

		case Code:
			writeOpen(sb, "code", r.classes.Code)
			sb.WriteString(escapeCode(s.Text))
			sb.WriteString("</code>")

		case Strong:
			writeOpen(sb, "strong", r.classes.Strong)
			r.writeSpans(sb, s.Children)
			sb.WriteString("</strong>")

		case Emphasis:
			writeOpen(sb, "em", r.classes.Em)
			r.writeSpans(sb, s.Children)
			sb.WriteString("</em>")

		case Link:
			// External links open in a new browsing context without a
			// referrer or a handle back to this window.
			sb.WriteString(`<a href="` + html.EscapeString(s.URL) + `"`)
			if r.classes.Link != "" {
				sb.WriteString(` class="` + r.classes.Link + `"`)
			}
			sb.WriteString(` target="_blank" rel="noopener noreferrer">`)
			r.writeSpans(sb, s.Children)
			sb.WriteString("</a>")
		}
	}
}

func writeOpen(sb *strings.Builder, tag, class string) {
	if class == "" {
		sb.WriteString("<" + tag + ">")
		return
	}
	sb.WriteString("<" + tag + ` class="` + class + `">`)
}

var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeCode(s string) string {
	return codeEscaper.Replace(s)
}
