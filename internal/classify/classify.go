// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify groups extracted spans into typed semantic blocks:
// headings, paragraphs, list items, and blank separators.
//
// Classification runs over visual lines, not raw spans, because a block
// decision needs the whole line: spans on one line must be accumulated
// before the line's dominant size and leading marker can be judged. The
// classifier itself is a small state machine with one state per emerging
// block type.
package classify

import (
	"strings"

	"github.com/adryserage/pdf-to-md/internal/profile"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

type state int

const (
	stateIdle state = iota
	stateInParagraph
	stateInListRun
	// stateInHeading exists so wrapped heading continuations can merge
	// into the open heading; any size change or blank gap closes it.
	stateInHeading
)

// Classifier turns a span stream into an ordered block sequence. It is
// constructed per document from the document's size profile and the
// conversion tunables, and holds no state between Classify calls.
type Classifier struct {
	profile      profile.Profile
	paragraphGap float64
	indentUnit   float64
}

// New builds a classifier for one document. When cfg.ParagraphGap is zero
// the threshold defaults to 0.7 times the profiled body size, so documents
// with larger type get proportionally larger paragraph spacing.
func New(p profile.Profile, cfg types.ConvertConfig) *Classifier {
	gap := cfg.ParagraphGap
	if gap <= 0 {
		gap = p.BodySize * 0.7
	}
	if gap <= 0 {
		gap = 8
	}
	return &Classifier{
		profile:      p,
		paragraphGap: gap,
		indentUnit:   cfg.IndentUnitOrDefault(),
	}
}

// Classify consumes the span stream in reading order and returns the typed
// block sequence. It is a total function: malformed spans are skipped and
// an empty stream yields an empty sequence.
func (c *Classifier) Classify(spans []types.Span) []types.Block {
	m := machine{c: c}
	for _, line := range AssembleLines(spans) {
		m.feed(line)
	}
	m.flush()
	return m.blocks
}

// machine holds the in-flight classification state for one document pass.
type machine struct {
	c      *Classifier
	state  state
	open   types.Block
	blocks []types.Block

	prevPage   int
	prevBottom float64
}

func (m *machine) feed(line Line) {
	// Vertical gaps are only meaningful within a page; a page break closes
	// whatever is open.
	gapExceeded := false
	if line.Page != m.prevPage {
		m.flush()
	} else if m.state != stateIdle {
		gapExceeded = m.prevBottom-line.BBox.Y1 > m.c.paragraphGap
	}
	m.prevPage = line.Page
	m.prevBottom = line.BBox.Y0

	text := line.Text()
	if strings.TrimSpace(text) == "" {
		m.flush()
		m.emitBlank()
		return
	}
	if gapExceeded {
		m.flush()
		m.emitBlank()
	}

	// Font size is the stronger structural signal: a line that is both
	// heading-sized and marker-prefixed classifies as a heading.
	if level := m.c.profile.LevelFor(line.DominantSize); level > 0 {
		if m.state == stateInHeading && m.open.Level == level {
			m.appendRuns(line.Runs())
			return
		}
		m.flush()
		m.open = types.Block{Kind: types.BlockHeading, Level: level, Runs: line.Runs(), Page: line.Page}
		m.state = stateInHeading
		return
	}

	if n := listMarker(text); n > 0 {
		m.flush()
		m.open = types.Block{
			Kind:  types.BlockListItem,
			Depth: listDepth(line.Indent, m.c.indentUnit),
			Runs:  stripMarker(line.Runs(), n),
			Page:  line.Page,
		}
		m.state = stateInListRun
		return
	}

	// Wrapped continuation of an open paragraph or list item.
	if m.state == stateInParagraph || m.state == stateInListRun {
		m.appendRuns(line.Runs())
		return
	}

	m.flush()
	m.open = types.Block{Kind: types.BlockParagraph, Runs: line.Runs(), Page: line.Page}
	m.state = stateInParagraph
}

// appendRuns joins a continuation line onto the open block. PDF line-wrap
// boundaries are not semantic, so the lines are joined by a single space.
func (m *machine) appendRuns(runs []types.Run) {
	if len(m.open.Runs) > 0 && len(runs) > 0 {
		last := &m.open.Runs[len(m.open.Runs)-1]
		if !strings.HasSuffix(last.Text, " ") && !strings.HasPrefix(runs[0].Text, " ") {
			last.Text += " "
		}
	}
	m.open.Runs = append(m.open.Runs, runs...)
}

// flush emits the open block, if any, and returns the machine to Idle.
func (m *machine) flush() {
	if m.state == stateIdle {
		return
	}
	if strings.TrimSpace(m.open.Text()) != "" {
		m.blocks = append(m.blocks, m.open)
	}
	m.open = types.Block{}
	m.state = stateIdle
}

// emitBlank appends a blank separator. Consecutive blanks collapse to one,
// and a blank before any content is dropped.
func (m *machine) emitBlank() {
	if len(m.blocks) == 0 || m.blocks[len(m.blocks)-1].Kind == types.BlockBlank {
		return
	}
	m.blocks = append(m.blocks, types.Block{Kind: types.BlockBlank})
}
