// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// Options controls optional renderer behavior.
type Options struct {
	// PageComments inserts "<!-- Page N -->" before the first block of
	// each page.
	PageComments bool
}

// Render serializes an ordered block sequence to Markdown. It is a pure,
// total function of its input: well-formed blocks always render, and an
// empty sequence renders to the empty string.
//
// Every block is separated from the next by exactly one blank line. Blank
// separator blocks produce no output of their own — the separation they
// forced already happened when the classifier closed the surrounding
// blocks — so consecutive blanks can never widen the spacing.
func Render(blocks []types.Block, opts Options) string {
	var parts []string
	page := 0

	for _, b := range blocks {
		if b.Kind == types.BlockBlank {
			continue
		}
		if opts.PageComments && b.Page > 0 && b.Page != page {
			parts = append(parts, fmt.Sprintf("<!-- Page %d -->", b.Page))
		}
		if b.Page > 0 {
			page = b.Page
		}
		if s := renderBlock(b); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func renderBlock(b types.Block) string {
	text := FormatRuns(b.Runs)
	if text == "" {
		return ""
	}
	switch b.Kind {
	case types.BlockHeading:
		return strings.Repeat("#", headingLevel(b.Level)) + " " + text
	case types.BlockListItem:
		depth := b.Depth
		if depth < 0 {
			depth = 0
		}
		return strings.Repeat("  ", depth) + "- " + text
	default:
		return text
	}
}

// headingLevel clamps a heading level into the Markdown range 1..6.
func headingLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
