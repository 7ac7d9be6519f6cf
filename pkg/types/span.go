// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BBox is an axis-aligned bounding box in PDF user-space points. The origin
// is the lower-left corner of the page; Y grows upward.
type BBox struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Empty reports whether the box has zero or negative area. Spans with an
// empty box carry no usable geometry and are skipped during classification.
func (b BBox) Empty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

// Overlaps reports whether the vertical extents of two boxes intersect.
// Spans whose boxes overlap vertically belong to the same visual line.
func (b BBox) Overlaps(o BBox) bool {
	return b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// Span is a contiguous run of text sharing one font, size, and style, as
// extracted from a page. Spans are created by the extractor and never
// mutated downstream.
type Span struct {
	// Text is the decoded text content of the span.
	Text string `json:"text" yaml:"text"`

	// BBox is the span's bounding geometry on the page.
	BBox BBox `json:"bbox" yaml:"bbox"`

	// FontSize is the rendered font size in points.
	FontSize float64 `json:"font_size" yaml:"font_size"`

	// FontName is the PDF font name (e.g. "Helvetica-Bold").
	FontName string `json:"font_name" yaml:"font_name"`

	// Bold and Italic are style flags derived from the font.
	Bold   bool `json:"bold" yaml:"bold"`
	Italic bool `json:"italic" yaml:"italic"`

	// Page is the 1-based page number the span was extracted from.
	Page int `json:"page" yaml:"page"`
}
