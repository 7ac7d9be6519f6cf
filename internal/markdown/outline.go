// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// HeadingInfo is one heading recovered by re-parsing emitted Markdown.
type HeadingInfo struct {
	Level int
	Text  string
}

// Outline parses Markdown and returns its heading outline in document
// order. The converter uses it, under the verify option, to confirm that
// the headings the classifier produced survive a round trip through the
// emitted text; tests use it for the same structural property.
func Outline(source []byte) []HeadingInfo {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var outline []HeadingInfo
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		outline = append(outline, HeadingInfo{
			Level: h.Level,
			Text:  string(nodeText(h, source)),
		})
		return ast.WalkSkipChildren, nil
	})
	return outline
}

// nodeText concatenates the raw text segments under a node.
func nodeText(node ast.Node, source []byte) []byte {
	var buf []byte
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf = append(buf, t.Segment.Value(source)...)
			continue
		}
		buf = append(buf, nodeText(c, source)...)
	}
	return buf
}
