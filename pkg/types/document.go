// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the state of PDF-to-Markdown conversion for a document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Document holds metadata and file paths for a converted document.
type Document struct {
	// ID is a slug derived from the PDF filename (e.g. "annual-report").
	ID string `json:"id" yaml:"id"`

	// SourceURL is the URL the PDF was fetched from, when it was fetched
	// rather than supplied locally.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	// PDFPath is the local filesystem path to the source PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// MarkdownPath is the path the converted Markdown was written to.
	MarkdownPath string `json:"markdown_path,omitempty" yaml:"markdown_path,omitempty"`

	// Pages is the number of pages in the source PDF.
	Pages int `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Blocks is the number of semantic blocks recovered during conversion.
	Blocks int `json:"blocks,omitempty" yaml:"blocks,omitempty"`

	// Headings is the number of heading blocks recovered.
	Headings int `json:"headings,omitempty" yaml:"headings,omitempty"`

	// ConvertedAt is the time of the last successful conversion.
	ConvertedAt time.Time `json:"converted_at,omitempty" yaml:"converted_at,omitempty"`

	// ConversionStatus tracks the outcome of the last conversion attempt.
	ConversionStatus ConversionStatus `json:"conversion_status" yaml:"conversion_status"`
}
