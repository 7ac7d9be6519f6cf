// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// char builds a single character-level text element the way the library
// reports them.
func char(s string, x, y, w, size float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: font}
}

func TestMergeTexts(t *testing.T) {
	const size = 12.0

	tests := []struct {
		name      string
		texts     []pdf.Text
		wantTexts []string
	}{
		{
			name: "adjacent characters fold into one span",
			texts: []pdf.Text{
				char("H", 72, 700, 8, size, "Helvetica"),
				char("i", 80, 700, 4, size, "Helvetica"),
			},
			wantTexts: []string{"Hi"},
		},
		{
			name: "word gap becomes a space",
			texts: []pdf.Text{
				char("a", 72, 700, 6, size, "Helvetica"),
				char("b", 84, 700, 6, size, "Helvetica"), // 6pt gap > 2.4pt threshold
			},
			wantTexts: []string{"a b"},
		},
		{
			name: "font change starts a new span",
			texts: []pdf.Text{
				char("plain", 72, 700, 30, size, "Helvetica"),
				char("bold", 102, 700, 26, size, "Helvetica-Bold"),
			},
			wantTexts: []string{"plain", "bold"},
		},
		{
			name: "baseline change starts a new span",
			texts: []pdf.Text{
				char("up", 72, 700, 12, size, "Helvetica"),
				char("down", 72, 686, 24, size, "Helvetica"),
			},
			wantTexts: []string{"up", "down"},
		},
		{
			name: "whitespace-only output is dropped",
			texts: []pdf.Text{
				char(" ", 72, 700, 4, size, "Helvetica"),
			},
			wantTexts: nil,
		},
		{
			name:      "no text",
			texts:     nil,
			wantTexts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := mergeTexts(tt.texts, 1)
			if len(spans) != len(tt.wantTexts) {
				t.Fatalf("got %d spans, want %d: %+v", len(spans), len(tt.wantTexts), spans)
			}
			for i, want := range tt.wantTexts {
				if spans[i].Text != want {
					t.Errorf("span %d text = %q, want %q", i, spans[i].Text, want)
				}
			}
		})
	}
}

func TestMergeTexts_StyleFlags(t *testing.T) {
	texts := []pdf.Text{
		char("b", 72, 700, 6, 12, "Helvetica-Bold"),
		char("i", 100, 700, 6, 12, "Times-Italic"),
		char("o", 130, 700, 6, 12, "Courier-Oblique"),
		char("bi", 160, 700, 12, 12, "Helvetica-BoldOblique"),
	}

	spans := mergeTexts(texts, 1)
	if len(spans) != 4 {
		t.Fatalf("got %d spans, want 4", len(spans))
	}

	wants := []struct{ bold, italic bool }{
		{true, false},
		{false, true},
		{false, true},
		{true, true},
	}
	for i, w := range wants {
		if spans[i].Bold != w.bold || spans[i].Italic != w.italic {
			t.Errorf("span %d (%s): bold=%v italic=%v, want bold=%v italic=%v",
				i, spans[i].FontName, spans[i].Bold, spans[i].Italic, w.bold, w.italic)
		}
	}
}

func TestMergeTexts_Geometry(t *testing.T) {
	texts := []pdf.Text{
		char("a", 72, 700, 6, 12, "Helvetica"),
		char("b", 78, 700, 6, 12, "Helvetica"),
	}

	spans := mergeTexts(texts, 3)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	s := spans[0]
	if s.Page != 3 {
		t.Errorf("page = %d, want 3", s.Page)
	}
	if s.BBox.X0 != 72 || s.BBox.X1 != 84 {
		t.Errorf("horizontal extent = [%v, %v], want [72, 84]", s.BBox.X0, s.BBox.X1)
	}
	if s.BBox.Y0 != 700 || s.BBox.Y1 != 712 {
		t.Errorf("vertical extent = [%v, %v], want [700, 712]", s.BBox.Y0, s.BBox.Y1)
	}
	if s.BBox.Empty() {
		t.Error("merged span has empty geometry")
	}
}

func TestPDFSource_MissingFile(t *testing.T) {
	_, _, err := NewPDFSource().Spans("does/not/exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
