package agent

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Items returns the plain text of the top level list items of a markdown
// document, emphasis removed. A document without a list yields its
// non-empty paragraphs instead.
func Items(markdown string) []string {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var items, paragraphs []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.List:
			for li := n.FirstChild(); li != nil; li = li.NextSibling() {
				if s := plain(li, source); s != "" {
					items = append(items, s)
				}
			}
		case *ast.Paragraph:
			if s := plain(n, source); s != "" {
				paragraphs = append(paragraphs, s)
			}
		}
	}
	if len(items) == 0 {
		return paragraphs
	}
	return items
}

// plain collects the text of n, skipping nested lists.
func plain(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.List:
			if c != n {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(buf.String()), " ")
}
