// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract yields the ordered span stream for a PDF document.
//
// Downstream stages only see the Source interface and the Span type, so the
// PDF library behind it is interchangeable. The production implementation
// uses ledongthuc/pdf (pure Go, no CGO).
package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// Source yields the span stream for a document in reading order, plus the
// page count. Implementations own span creation; spans are immutable once
// returned.
type Source interface {
	Spans(path string) ([]types.Span, int, error)
}

// PDFSource extracts spans from PDF files with ledongthuc/pdf.
type PDFSource struct{}

// NewPDFSource returns the production span source.
func NewPDFSource() *PDFSource {
	return &PDFSource{}
}

// Spans opens the PDF at path and extracts every page's text as spans.
// An unreadable file is fatal; a single malformed page is skipped so one
// broken content stream does not lose the whole document.
func (s *PDFSource) Spans(path string) ([]types.Span, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var spans []types.Span
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		pageSpans, err := extractPage(r, i)
		if err != nil {
			continue
		}
		spans = append(spans, pageSpans...)
	}
	return spans, numPages, nil
}

// extractPage pulls one page's text. The underlying library panics on some
// malformed content streams, so the panic is converted to an error here and
// the page is dropped by the caller.
func extractPage(r *pdf.Reader, pageNum int) (spans []types.Span, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extracting page %d: %v", pageNum, rec)
		}
	}()

	page := r.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}
	return mergeTexts(page.Content().Text, pageNum), nil
}

// mergeTexts folds the library's character-level text elements into spans:
// maximal runs sharing one font, size, and baseline. A horizontal gap wide
// enough to be a word boundary becomes a space inside the span; a font,
// size, or baseline change starts a new span.
func mergeTexts(texts []pdf.Text, pageNum int) []types.Span {
	var spans []types.Span
	var cur *builder

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if cur != nil && cur.accepts(t) {
			cur.add(t)
			continue
		}
		if cur != nil {
			if sp, ok := cur.span(pageNum); ok {
				spans = append(spans, sp)
			}
		}
		cur = newBuilder(t)
	}
	if cur != nil {
		if sp, ok := cur.span(pageNum); ok {
			spans = append(spans, sp)
		}
	}
	return spans
}

// builder accumulates one span in progress.
type builder struct {
	text    strings.Builder
	font    string
	size    float64
	x0, y   float64
	lastEnd float64
}

func newBuilder(t pdf.Text) *builder {
	b := &builder{
		font: t.Font,
		size: t.FontSize,
		x0:   t.X,
		y:    t.Y,
	}
	b.add(t)
	return b
}

// accepts reports whether t continues the span under construction: same
// font and size, same baseline, and not separated by a column-wide gap.
func (b *builder) accepts(t pdf.Text) bool {
	if t.Font != b.font || t.FontSize != b.size {
		return false
	}
	if abs(t.Y-b.y) > b.size*0.2 {
		return false
	}
	// A gap of several em widths is a layout break, not a word space.
	return t.X-b.lastEnd <= b.size*3
}

func (b *builder) add(t pdf.Text) {
	if b.text.Len() > 0 && wordGap(b.lastEnd, t.X, b.size) {
		b.text.WriteByte(' ')
	}
	b.text.WriteString(t.S)
	b.lastEnd = t.X + t.W
}

func (b *builder) span(pageNum int) (types.Span, bool) {
	text := b.text.String()
	if strings.TrimSpace(text) == "" {
		return types.Span{}, false
	}
	font := strings.ToLower(b.font)
	return types.Span{
		Text:     text,
		FontName: b.font,
		FontSize: b.size,
		Bold:     strings.Contains(font, "bold"),
		Italic:   strings.Contains(font, "italic") || strings.Contains(font, "oblique"),
		BBox: types.BBox{
			X0: b.x0,
			Y0: b.y,
			X1: b.lastEnd,
			Y1: b.y + b.size,
		},
		Page: pageNum,
	}, true
}

// wordGap reports whether the horizontal distance between two adjacent text
// elements is a word boundary. The threshold scales with font size, with a
// 1pt floor.
func wordGap(prevEnd, nextStart, size float64) bool {
	threshold := size * 0.2
	if threshold < 1.0 {
		threshold = 1.0
	}
	return nextStart-prevEnd > threshold
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
