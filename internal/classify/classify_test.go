// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/adryserage/pdf-to-md/internal/profile"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

// span builds a span whose baseline sits at y on the given page. The box
// height is the font size, which is close enough to real extractor output
// for grouping purposes.
func span(text string, size, x, y float64, page int) types.Span {
	width := float64(len(text)) * size * 0.5
	return types.Span{
		Text:     text,
		FontSize: size,
		BBox:     types.BBox{X0: x, Y0: y, X1: x + width, Y1: y + size},
		Page:     page,
	}
}

// bodyProfile is the fixed profile used by most classifier tests: body 12pt,
// level 1 at 24pt, level 2 at 16pt.
var bodyProfile = profile.Profile{BodySize: 12, Thresholds: []float64{24, 16}}

func classifyWith(p profile.Profile, spans []types.Span) []types.Block {
	return New(p, types.ConvertConfig{}).Classify(spans)
}

func kinds(blocks []types.Block) []types.BlockKind {
	out := make([]types.BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestClassify_TitleSectionBody(t *testing.T) {
	spans := []types.Span{
		span("My Document Title", 24, 72, 700, 1),
		span("Section 1: Introduction", 16, 72, 650, 1),
		span("This is body text.", 12, 72, 620, 1),
	}

	blocks := classifyWith(bodyProfile, spans)

	var content []types.Block
	for _, b := range blocks {
		if b.Kind != types.BlockBlank {
			content = append(content, b)
		}
	}
	if len(content) != 3 {
		t.Fatalf("got %d content blocks, want 3: %+v", len(content), content)
	}
	if content[0].Kind != types.BlockHeading || content[0].Level != 1 {
		t.Errorf("block 0 = %+v, want level-1 heading", content[0])
	}
	if content[1].Kind != types.BlockHeading || content[1].Level != 2 {
		t.Errorf("block 1 = %+v, want level-2 heading", content[1])
	}
	if content[2].Kind != types.BlockParagraph {
		t.Errorf("block 2 = %+v, want paragraph", content[2])
	}
	if got := content[2].Text(); got != "This is body text." {
		t.Errorf("paragraph text = %q", got)
	}
}

func TestClassify_UniformSizeNeverHeading(t *testing.T) {
	spans := []types.Span{
		span("first line of text", 12, 72, 700, 1),
		span("second line of text", 12, 72, 600, 1),
		span("third line of text", 12, 72, 500, 1),
	}
	p := profile.Build(spans, 6)
	if p.MaxLevel() != 0 {
		t.Fatalf("uniform document should have no heading thresholds, got %v", p.Thresholds)
	}

	for _, b := range classifyWith(p, spans) {
		if b.Kind == types.BlockHeading {
			t.Errorf("uniform-size document produced a heading: %+v", b)
		}
	}
}

func TestClassify_ParagraphWrapJoins(t *testing.T) {
	// Baselines 14pt apart: the 2pt gap between lines is well under the
	// 8.4pt default threshold, so the lines are one wrapped paragraph.
	spans := []types.Span{
		span("The first wrapped line of the", 12, 72, 700, 1),
		span("paragraph continues here.", 12, 72, 686, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 1 || blocks[0].Kind != types.BlockParagraph {
		t.Fatalf("got %+v, want a single paragraph", blocks)
	}
	want := "The first wrapped line of the paragraph continues here."
	if got := blocks[0].Text(); got != want {
		t.Errorf("joined text = %q, want %q", got, want)
	}
}

func TestClassify_GapSplitsParagraphs(t *testing.T) {
	spans := []types.Span{
		span("First paragraph.", 12, 72, 700, 1),
		span("Second paragraph after a wide gap.", 12, 72, 650, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	want := []types.BlockKind{types.BlockParagraph, types.BlockBlank, types.BlockParagraph}
	got := kinds(blocks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
}

func TestClassify_ListItems(t *testing.T) {
	spans := []types.Span{
		span("* First item", 12, 72, 700, 1),
		span("* Second item with ", 12, 72, 686, 1),
		{
			Text:     "bold",
			FontSize: 12,
			Bold:     true,
			BBox:     types.BBox{X0: 186, Y0: 686, X1: 210, Y1: 698},
			Page:     1,
		},
		span(" part.", 12, 210, 686, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 list items: %+v", len(blocks), blocks)
	}
	for i, b := range blocks {
		if b.Kind != types.BlockListItem || b.Depth != 0 {
			t.Errorf("block %d = %+v, want depth-0 list item", i, b)
		}
	}
	if got := blocks[0].Text(); got != "First item" {
		t.Errorf("item 0 text = %q, want marker stripped", got)
	}
	if got := blocks[1].Text(); got != "Second item with bold part." {
		t.Errorf("item 1 text = %q", got)
	}

	var bold bool
	for _, r := range blocks[1].Runs {
		if r.Bold && r.Text == "bold" {
			bold = true
		}
	}
	if !bold {
		t.Errorf("bold run lost in %+v", blocks[1].Runs)
	}
}

func TestClassify_ListDepthMonotonic(t *testing.T) {
	// Indentation 0, 18, 36, 9 against an 18pt unit.
	spans := []types.Span{
		span("- base item", 12, 72, 700, 1),
		span("- one level in", 12, 90, 686, 1),
		span("- two levels in", 12, 108, 672, 1),
		span("- half-unit rounds to one", 12, 81, 658, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4: %+v", len(blocks), blocks)
	}
	wantDepths := []int{0, 1, 2, 1}
	for i, b := range blocks {
		if b.Depth != wantDepths[i] {
			t.Errorf("item %d depth = %d, want %d", i, b.Depth, wantDepths[i])
		}
	}

	// Monotonic: deeper indentation never yields a shallower depth.
	type pair struct{ indent, depth int }
	pairs := []pair{{0, blocks[0].Depth}, {18, blocks[1].Depth}, {36, blocks[2].Depth}, {9, blocks[3].Depth}}
	for _, a := range pairs {
		for _, b := range pairs {
			if a.indent < b.indent && a.depth > b.depth {
				t.Errorf("indent %d has depth %d but indent %d has depth %d", a.indent, a.depth, b.indent, b.depth)
			}
		}
	}
}

func TestClassify_ListContinuationLine(t *testing.T) {
	spans := []types.Span{
		span("- An item whose text wraps to", 12, 72, 700, 1),
		span("the following line.", 12, 90, 686, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 1 || blocks[0].Kind != types.BlockListItem {
		t.Fatalf("got %+v, want a single list item", blocks)
	}
	want := "An item whose text wraps to the following line."
	if got := blocks[0].Text(); got != want {
		t.Errorf("item text = %q, want %q", got, want)
	}
}

func TestClassify_HeadingBeatsListMarker(t *testing.T) {
	spans := []types.Span{
		span("- Not actually a list", 24, 72, 700, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 1 || blocks[0].Kind != types.BlockHeading || blocks[0].Level != 1 {
		t.Fatalf("got %+v, want a level-1 heading", blocks)
	}
}

func TestClassify_WrappedHeadingMerges(t *testing.T) {
	spans := []types.Span{
		span("A Long Chapter Title That", 16, 72, 700, 1),
		span("Wraps Onto A Second Line", 16, 72, 682, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 1 || blocks[0].Kind != types.BlockHeading {
		t.Fatalf("got %+v, want one merged heading", blocks)
	}
	want := "A Long Chapter Title That Wraps Onto A Second Line"
	if got := blocks[0].Text(); got != want {
		t.Errorf("heading text = %q, want %q", got, want)
	}
}

func TestClassify_SeparatedHeadingsStaySeparate(t *testing.T) {
	// Same heading size, but with a wide gap: two headings, not one.
	spans := []types.Span{
		span("First Section", 16, 72, 700, 1),
		span("Second Section", 16, 72, 600, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	var headings int
	for _, b := range blocks {
		if b.Kind == types.BlockHeading {
			headings++
		}
	}
	if headings != 2 {
		t.Fatalf("got %d headings, want 2: %+v", headings, blocks)
	}
}

func TestClassify_MalformedSpanSkipped(t *testing.T) {
	spans := []types.Span{
		span("Good text before.", 12, 72, 700, 1),
		{Text: "zero-area box", FontSize: 12, BBox: types.BBox{X0: 72, Y0: 690, X1: 72, Y1: 690}, Page: 1},
		span("continued on the same thought.", 12, 72, 686, 1),
	}

	blocks := classifyWith(bodyProfile, spans)
	if len(blocks) != 1 || blocks[0].Kind != types.BlockParagraph {
		t.Fatalf("got %+v, want one paragraph", blocks)
	}
	if got := blocks[0].Text(); got == "" {
		t.Error("paragraph text lost")
	}
	for _, b := range blocks {
		if b.Kind != types.BlockBlank && containsRun(b, "zero-area box") {
			t.Errorf("malformed span leaked into output: %+v", b)
		}
	}
}

func containsRun(b types.Block, text string) bool {
	for _, r := range b.Runs {
		if r.Text == text {
			return true
		}
	}
	return false
}

func TestClassify_PageBoundaryClosesBlock(t *testing.T) {
	spans := []types.Span{
		span("Last paragraph of page one.", 12, 72, 80, 1),
		span("First paragraph of page two.", 12, 72, 700, 2),
	}

	blocks := classifyWith(bodyProfile, spans)
	var paras []types.Block
	for _, b := range blocks {
		if b.Kind == types.BlockParagraph {
			paras = append(paras, b)
		}
	}
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2: %+v", len(paras), blocks)
	}
	if paras[0].Page != 1 || paras[1].Page != 2 {
		t.Errorf("page tags = %d, %d; want 1, 2", paras[0].Page, paras[1].Page)
	}
}

func TestClassify_EmptyStream(t *testing.T) {
	if blocks := classifyWith(profile.Profile{}, nil); len(blocks) != 0 {
		t.Fatalf("empty stream produced blocks: %+v", blocks)
	}
}

func TestClassify_ConfiguredGapOverride(t *testing.T) {
	spans := []types.Span{
		span("close line one", 12, 72, 700, 1),
		span("close line two", 12, 72, 686, 1),
	}

	// A 1pt threshold forces even tightly-set lines into separate blocks.
	c := New(bodyProfile, types.ConvertConfig{ParagraphGap: 1})
	blocks := c.Classify(spans)

	var paras int
	for _, b := range blocks {
		if b.Kind == types.BlockParagraph {
			paras++
		}
	}
	if paras != 2 {
		t.Fatalf("got %d paragraphs, want 2 with 1pt gap threshold: %+v", paras, blocks)
	}
}
