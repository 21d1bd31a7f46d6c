// Package mdimport lowers Markdown into report content items.
//
// The mapping targets the report content vocabulary rather than general
// rich text: headings become report headings, list nesting selects the
// bullet/dash/star levels, blockquotes become notes, thematic breaks become
// empty lines, and GFM tables become data tables.
package mdimport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Item is one lowered content item. Type uses the report content-type
// vocabulary: heading, paragraph, bullet, dash, star, table, note, empty.
type Item struct {
	Type    string
	Text    string
	Caption string
	Headers []string
	Rows    [][]string
}

// Convert parses src as Markdown (with GFM tables) and lowers the block
// structure to content items.
func Convert(src []byte) ([]Item, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	var items []Item
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lowered, err := lowerBlock(n, src)
		if err != nil {
			return nil, err
		}
		items = append(items, lowered...)
	}
	return items, nil
}

func lowerBlock(n ast.Node, src []byte) ([]Item, error) {
	switch node := n.(type) {
	case *ast.Heading:
		return []Item{{Type: "heading", Text: extractText(node, src)}}, nil

	case *ast.Paragraph, *ast.TextBlock:
		t := extractText(n, src)
		if t == "" {
			return nil, nil
		}
		return []Item{{Type: "paragraph", Text: t}}, nil

	case *ast.List:
		return lowerList(node, src, 0), nil

	case *ast.Blockquote:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if t := extractText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
		return []Item{{Type: "note", Text: strings.Join(parts, " ")}}, nil

	case *ast.ThematicBreak:
		return []Item{{Type: "empty"}}, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		t := extractLines(n, src)
		if t == "" {
			return nil, nil
		}
		return []Item{{Type: "paragraph", Text: t}}, nil

	case *east.Table:
		return lowerTable(node, src)

	default:
		// Unknown blocks degrade to their text content rather than
		// silently disappearing.
		t := extractText(n, src)
		if t == "" {
			return nil, nil
		}
		return []Item{{Type: "paragraph", Text: t}}, nil
	}
}

// listTypes maps list nesting depth to the content-type ladder.
var listTypes = []string{"bullet", "dash", "star"}

func lowerList(list *ast.List, src []byte, depth int) []Item {
	typ := listTypes[min(depth, len(listTypes)-1)]

	var items []Item
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				items = append(items, lowerList(nested, src, depth+1)...)
				continue
			}
			if t := extractText(c, src); t != "" {
				items = append(items, Item{Type: typ, Text: t})
			}
		}
	}
	return items
}

func lowerTable(table *east.Table, src []byte) ([]Item, error) {
	item := Item{Type: "table"}
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, extractText(cell, src))
		}
		switch row.(type) {
		case *east.TableHeader:
			item.Headers = cells
		case *east.TableRow:
			item.Rows = append(item.Rows, cells)
		}
	}
	if len(item.Headers) == 0 {
		return nil, fmt.Errorf("markdown table has no header row")
	}
	return []Item{item}, nil
}

// extractText collects the inline text content of a node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

// extractLines collects the raw source lines of a literal block.
func extractLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimSpace(buf.String())
}
