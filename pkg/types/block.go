// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind discriminates the Block variants.
type BlockKind int

const (
	// BlockBlank is a separator between blocks. Consecutive blanks
	// collapse to one during rendering.
	BlockBlank BlockKind = iota

	// BlockHeading is a section heading with a level from 1 to 6.
	BlockHeading

	// BlockParagraph is running body text.
	BlockParagraph

	// BlockListItem is a single bulleted or numbered list item.
	BlockListItem
)

// String returns the kind name used in status output and the ledger.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockListItem:
		return "list-item"
	default:
		return "blank"
	}
}

// Run is a maximal piece of a block's text sharing identical emphasis flags.
type Run struct {
	Text   string `json:"text" yaml:"text"`
	Bold   bool   `json:"bold" yaml:"bold"`
	Italic bool   `json:"italic" yaml:"italic"`
}

// Block is one semantic unit of output: a heading, paragraph, list item, or
// blank separator. Level is meaningful only for headings, Depth only for
// list items. A block owns its runs exclusively; the classifier never shares
// or mutates a block after emitting it.
type Block struct {
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Level is the heading level (1..6) when Kind is BlockHeading.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Depth is the nesting depth (0-based) when Kind is BlockListItem.
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`

	// Runs is the block's text in order, split by emphasis boundaries.
	Runs []Run `json:"runs,omitempty" yaml:"runs,omitempty"`

	// Page is the page the block started on (1-based).
	Page int `json:"page,omitempty" yaml:"page,omitempty"`
}

// Text returns the block's plain text with emphasis flags ignored.
func (b Block) Text() string {
	var n int
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}
