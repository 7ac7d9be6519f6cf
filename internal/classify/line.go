// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"sort"
	"strings"

	"github.com/adryserage/pdf-to-md/internal/profile"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

// Line is one visual line of text: the spans whose vertical extents overlap,
// ordered left to right. Lines are the unit of classification; a block
// decision is only made once a full line has been accumulated.
type Line struct {
	// Spans are the member spans, sorted left to right.
	Spans []types.Span

	// BBox is the union of the member span boxes.
	BBox types.BBox

	// Page is the 1-based page the line sits on.
	Page int

	// Indent is the horizontal distance from the page's left text margin.
	Indent float64

	// DominantSize is the char-weighted prevailing font size of the line.
	DominantSize float64
}

// Text returns the assembled plain text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l.Runs() {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Runs converts the line's spans to emphasis runs, inserting a single space
// where the horizontal gap between adjacent spans indicates a word boundary.
func (l Line) Runs() []types.Run {
	runs := make([]types.Run, 0, len(l.Spans))
	for i, s := range l.Spans {
		text := s.Text
		if i > 0 {
			prev := l.Spans[i-1]
			if wordGap(prev, s) && !strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(text, " ") {
				text = " " + text
			}
		}
		runs = append(runs, types.Run{Text: text, Bold: s.Bold, Italic: s.Italic})
	}
	return runs
}

// wordGap reports whether the horizontal distance between two adjacent spans
// is wide enough to be a word boundary rather than kerning. The threshold
// scales with the font size, with a 1pt floor for tiny text.
func wordGap(prev, next types.Span) bool {
	threshold := next.FontSize * 0.2
	if threshold < 1.0 {
		threshold = 1.0
	}
	return next.BBox.X0-prev.BBox.X1 > threshold
}

// AssembleLines groups spans into visual lines in reading order: page order,
// then top to bottom, then left to right. Spans with malformed geometry
// (zero-area box) are skipped and never affect grouping.
func AssembleLines(spans []types.Span) []Line {
	byPage := make(map[int][]types.Span)
	var pages []int
	for _, s := range spans {
		if s.BBox.Empty() {
			continue
		}
		if _, ok := byPage[s.Page]; !ok {
			pages = append(pages, s.Page)
		}
		byPage[s.Page] = append(byPage[s.Page], s)
	}
	sort.Ints(pages)

	var lines []Line
	for _, page := range pages {
		lines = append(lines, assemblePageLines(byPage[page])...)
	}
	return lines
}

func assemblePageLines(spans []types.Span) []Line {
	// Top to bottom first; Y grows upward in PDF space.
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].BBox.Y1 != spans[j].BBox.Y1 {
			return spans[i].BBox.Y1 > spans[j].BBox.Y1
		}
		return spans[i].BBox.X0 < spans[j].BBox.X0
	})

	margin := spans[0].BBox.X0
	for _, s := range spans {
		if s.BBox.X0 < margin {
			margin = s.BBox.X0
		}
	}

	var lines []Line
	for _, s := range spans {
		if n := len(lines); n > 0 && lines[n-1].BBox.Overlaps(s.BBox) {
			cur := &lines[n-1]
			cur.Spans = append(cur.Spans, s)
			cur.BBox = union(cur.BBox, s.BBox)
			continue
		}
		lines = append(lines, Line{Spans: []types.Span{s}, BBox: s.BBox, Page: s.Page})
	}

	for i := range lines {
		sort.SliceStable(lines[i].Spans, func(a, b int) bool {
			return lines[i].Spans[a].BBox.X0 < lines[i].Spans[b].BBox.X0
		})
		lines[i].Indent = lines[i].BBox.X0 - margin
		lines[i].DominantSize = dominantSize(lines[i].Spans)
	}
	return lines
}

func union(a, b types.BBox) types.BBox {
	if b.X0 < a.X0 {
		a.X0 = b.X0
	}
	if b.Y0 < a.Y0 {
		a.Y0 = b.Y0
	}
	if b.X1 > a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 > a.Y1 {
		a.Y1 = b.Y1
	}
	return a
}

// dominantSize returns the char-weighted most frequent quantized font size
// within one line.
func dominantSize(spans []types.Span) float64 {
	weights := make(map[float64]int)
	best, bestWeight := 0.0, 0
	for _, s := range spans {
		q := profile.Quantize(s.FontSize)
		weights[q] += len(strings.TrimSpace(s.Text))
		if weights[q] > bestWeight {
			best, bestWeight = q, weights[q]
		}
	}
	return best
}
