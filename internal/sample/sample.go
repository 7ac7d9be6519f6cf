// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample generates a small demonstration PDF for exercising the
// conversion pipeline end to end without an external document.
package sample

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	titleSize   = 24.0
	sectionSize = 16.0
	bodySize    = 12.0
	lineHeight  = 16.0
)

// Generate writes a demonstration PDF to path: a title, two sections with
// body paragraphs, a mid-sentence bold span, and a bullet list.
func Generate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, titleSize+6, "My Document Title", "", 1, "L", false, 0, "")
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "B", sectionSize)
	pdf.CellFormat(0, sectionSize+4, "Section 1: Introduction", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", bodySize)
	pdf.MultiCell(0, lineHeight,
		"This is body text in the introduction. It runs long enough to wrap "+
			"onto a second line so the converter has a paragraph to reassemble.",
		"", "L", false)
	pdf.Ln(12)

	pdf.Write(lineHeight, "A second paragraph mentions something ")
	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.Write(lineHeight, "important")
	pdf.SetFont("Helvetica", "", bodySize)
	pdf.Write(lineHeight, " in the middle of a sentence.")
	pdf.Ln(lineHeight + 12)

	pdf.SetFont("Helvetica", "B", sectionSize)
	pdf.CellFormat(0, sectionSize+4, "Section 2: Details", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", bodySize)
	for _, item := range []string{
		"First item in the list.",
		"Second item in the list.",
		"Third item in the list.",
	} {
		pdf.CellFormat(0, lineHeight, "• "+item, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing sample PDF %s: %w", path, err)
	}
	return nil
}
