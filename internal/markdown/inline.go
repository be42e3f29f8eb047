// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import "strings"

// SpanKind identifies the variant of an inline Span.
type SpanKind int

const (
	Text SpanKind = iota
	Code
	Strong
	Emphasis
	Link
)

// Span is one inline construct. Text and Code carry Text; Strong, Emphasis
// and Link carry their scanned contents in Children; Link also carries URL.
type Span struct {
	Kind     SpanKind
	Text     string
	URL      string
	Children []Span
}

// ParseInline scans a single line of text into spans, left to right.
//
// Precedence at any position: inline code, then **strong**, then *emphasis*,
// then [label](url). Code span contents are opaque. Closing delimiters for
// strong and emphasis are never matched inside a code span or a complete
// link, so a URL containing '*' stays intact. Delimiters enclosing nothing
// are not constructs. Anything unmatched is literal text.
//
// Every closing-delimiter search is answered from an index built once per
// line, so scanning is linear in the length of s. Constructs nested deeper
// than maxInlineDepth keep their contents as plain text.
func ParseInline(s string) []Span {
	return parseInline(s, 0)
}

// maxInlineDepth bounds how many times a line's contents are re-indexed.
const maxInlineDepth = 16

func parseInline(s string, depth int) []Span {
	if depth >= maxInlineDepth {
		if s == "" {
			return nil
		}
		return []Span{{Kind: Text, Text: s}}
	}
	x := indexLine(s)

	var (
		spans []Span
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Kind: Text, Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case '`':
			if n := x.codeSpanLen(i); n > 0 {
				flush()
				spans = append(spans, Span{Kind: Code, Text: s[i+1 : i+n-1]})
				i += n
				continue
			}

		case '*':
			if strings.HasPrefix(s[i:], "**") {
				end := x.strongEnd[i+2]
				if end > i+2 {
					flush()
					spans = append(spans, Span{Kind: Strong, Children: parseInline(s[i+2:end], depth+1)})
					i = end + 2
					continue
				}
				// An unclosed "**" is literal; it must not open emphasis.
				buf.WriteString("**")
				i += 2
				continue
			}
			end := x.emphasisEnd[i+1]
			if end > i+1 {
				flush()
				spans = append(spans, Span{Kind: Emphasis, Children: parseInline(s[i+1:end], depth+1)})
				i = end + 1
				continue
			}

		case '[':
			if label, url, n, ok := x.link(i); ok {
				flush()
				spans = append(spans, Span{Kind: Link, URL: url, Children: parseInline(label, depth+1)})
				i += n
				continue
			}
		}

		buf.WriteByte(s[i])
		i++
	}
	flush()
	return spans
}

// lineIndex records, for each position i of a line, where a scan starting
// at i would stop. Every table has a trailing entry for len(s); -1 means
// the scan runs off the end.
type lineIndex struct {
	s string

	nextTick  []int // next '`' at or after i
	nextParen []int // next ')' at or after i

	// labelEnd is the first ']' at or after i outside a code span.
	labelEnd []int
	// strongEnd is the first "**" at or after i outside a code span or
	// complete link.
	strongEnd []int
	// emphasisEnd is the first lone '*' at or after i outside a code span
	// or complete link. "**" runs are stepped over.
	emphasisEnd []int
}

// indexLine builds every table in a single backward pass. Each entry only
// depends on entries to its right, which are already filled in.
func indexLine(s string) *lineIndex {
	n := len(s)
	x := &lineIndex{
		s:           s,
		nextTick:    make([]int, n+1),
		nextParen:   make([]int, n+1),
		labelEnd:    make([]int, n+1),
		strongEnd:   make([]int, n+1),
		emphasisEnd: make([]int, n+1),
	}
	x.nextTick[n], x.nextParen[n], x.labelEnd[n], x.strongEnd[n], x.emphasisEnd[n] = -1, -1, -1, -1, -1

	for i := n - 1; i >= 0; i-- {
		x.nextTick[i] = x.nextTick[i+1]
		x.nextParen[i] = x.nextParen[i+1]
		switch s[i] {
		case '`':
			x.nextTick[i] = i
		case ')':
			x.nextParen[i] = i
		}

		switch cn := x.codeSpanLen(i); {
		case s[i] == ']':
			x.labelEnd[i] = i
		case cn > 0:
			x.labelEnd[i] = x.labelEnd[i+cn]
		default:
			x.labelEnd[i] = x.labelEnd[i+1]
		}

		if on := x.opaqueLen(i); on > 0 {
			x.strongEnd[i] = x.strongEnd[i+on]
			x.emphasisEnd[i] = x.emphasisEnd[i+on]
			continue
		}

		double := s[i] == '*' && i+1 < n && s[i+1] == '*'
		switch {
		case double:
			x.strongEnd[i] = i
			x.emphasisEnd[i] = x.emphasisEnd[i+2]
		case s[i] == '*':
			x.strongEnd[i] = x.strongEnd[i+1]
			x.emphasisEnd[i] = i
		default:
			x.strongEnd[i] = x.strongEnd[i+1]
			x.emphasisEnd[i] = x.emphasisEnd[i+1]
		}
	}
	return x
}

// codeSpanLen returns the length of the code span starting at i, including
// both backticks, or 0 if none starts there. Needs nextTick filled from i+1.
func (x *lineIndex) codeSpanLen(i int) int {
	if x.s[i] != '`' {
		return 0
	}
	end := x.nextTick[i+1]
	if end < 0 || end == i+1 {
		return 0
	}
	return end - i + 1
}

// opaqueLen returns the length of a code span or complete link starting
// at i, or 0.
func (x *lineIndex) opaqueLen(i int) int {
	if n := x.codeSpanLen(i); n > 0 {
		return n
	}
	if _, _, n, ok := x.link(i); ok {
		return n
	}
	return 0
}

// link matches "[label](url)" at i. The label ends at the first ']' outside
// a code span and must be followed directly by '('. The URL runs to the
// first ')'; a URL cannot contain a closing parenthesis.
func (x *lineIndex) link(i int) (label, url string, n int, ok bool) {
	s := x.s
	if len(s)-i < 4 || s[i] != '[' {
		return "", "", 0, false
	}

	end := x.labelEnd[i+1]
	if end <= i+1 || end+1 >= len(s) || s[end+1] != '(' {
		return "", "", 0, false
	}

	closeParen := x.nextParen[end+2]
	if closeParen <= end+2 {
		return "", "", 0, false
	}
	return s[i+1 : end], s[end+2 : closeParen], closeParen - i + 1, true
}
