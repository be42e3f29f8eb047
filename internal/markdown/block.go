// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	List
)

var blockKindNames = map[BlockKind]string{
	Paragraph: "paragraph",
	Heading:   "heading",
	CodeBlock: "code_block",
	List:      "list",
}

// String returns the lowercase name of the kind, e.g. "code_block".
func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// MarshalText lets block sequences be dumped as readable JSON.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is a single block-level construct classified from the input.
// Only the fields relevant to Kind are set.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // 1-3, Heading only
	Lang  string    `json:"lang,omitempty"`  // CodeBlock only, never rendered
	Text  string    `json:"text,omitempty"`  // Heading, CodeBlock, Paragraph
	Items []string  `json:"items,omitempty"` // List only
}

var (
	// Capture group 1: optional language tag.
	fenceOpenRegexp  = regexp.MustCompile("^```(\\w*)[ \\t]*$")
	fenceCloseRegexp = regexp.MustCompile("^```[ \\t]*$")
)

// headingPrefixes is ordered longest first so "### " never reads as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

const listPrefix = "- "

// Parse classifies the input line by line into a sequence of blocks.
//
// A fenced code block claims every line up to its closing fence, so nothing
// inside it is ever seen as a heading, list item or paragraph. A fence with
// no closing line is not a code block; the opening line falls through to the
// remaining rules. Consecutive list item lines collapse into one List block.
// Blank lines separate blocks and produce none of their own.
func Parse(input string) []Block {
	lines := splitLines(input)
	closers := closingFences(lines)

	var blocks []Block
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := fenceOpenRegexp.FindStringSubmatch(line); m != nil {
			if end := closers[i+1]; end >= 0 {
				blocks = append(blocks, Block{
					Kind: CodeBlock,
					Lang: m[1],
					Text: strings.Join(lines[i+1:end], "\n"),
				})
				i = end
				continue
			}
		}

		if level, text, ok := heading(line); ok {
			blocks = append(blocks, Block{Kind: Heading, Level: level, Text: text})
			continue
		}

		if item, ok := listItem(line); ok {
			items := []string{item}
			for i+1 < len(lines) {
				next, ok := listItem(lines[i+1])
				if !ok {
					break
				}
				items = append(items, next)
				i++
			}
			blocks = append(blocks, Block{Kind: List, Items: items})
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		blocks = append(blocks, Block{Kind: Paragraph, Text: line})
	}
	return blocks
}

func splitLines(input string) []string {
	return strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
}

// closingFences returns, for each line index i, the index of the first
// closing fence at or after i, or -1. It has an extra trailing entry so an
// opening fence on the last line looks up -1.
func closingFences(lines []string) []int {
	next := make([]int, len(lines)+1)
	next[len(lines)] = -1
	for i := len(lines) - 1; i >= 0; i-- {
		next[i] = next[i+1]
		if fenceCloseRegexp.MatchString(lines[i]) {
			next[i] = i
		}
	}
	return next
}

func heading(line string) (int, string, bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, line[len(h.prefix):], true
		}
	}
	return 0, "", false
}

// listItem reports whether line is a list item. The marker must be
// followed by at least one character; a bare "- " is a paragraph.
func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, listPrefix) && len(line) > len(listPrefix) {
		return line[len(listPrefix):], true
	}
	return "", false
}
