// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives PDF-to-Markdown conversion: it runs a Converter
// over single documents or batches, writes the output files, and reports
// per-file status.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

const (
	// markdownDir is the subdirectory under the docs base for Markdown output.
	markdownDir = "markdown"
	// rawDir is the subdirectory under the docs base for source PDFs.
	rawDir = "raw"
)

// Result holds the output of converting one document.
type Result struct {
	// Markdown is the rendered document text, without frontmatter.
	Markdown string

	// Pages is the source page count.
	Pages int

	// Blocks is the number of semantic blocks recovered (blanks excluded).
	Blocks int

	// Headings is the number of heading blocks recovered.
	Headings int
}

// Converter transforms a PDF file into Markdown. The native span pipeline
// is the production implementation; tests supply fakes.
type Converter interface {
	// Convert reads a PDF at pdfPath and returns the conversion result.
	Convert(pdfPath string) (Result, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Documents []*types.Document
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertDocument converts a single PDF to Markdown, writing the result to
// docsDir/markdown/<id>.md and updating doc's conversion fields in place.
// If the Markdown output already exists, conversion is skipped and
// ConversionNone returned.
func ConvertDocument(c Converter, doc *types.Document, docsDir string, w io.Writer) types.ConversionStatus {
	outDir := filepath.Join(docsDir, markdownDir)
	mdPath := filepath.Join(outDir, doc.ID+".md")

	if _, err := os.Stat(mdPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", doc.ID)
		doc.MarkdownPath = mdPath
		return types.ConversionNone
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return types.ConversionFailed
	}

	res, err := c.Convert(doc.PDFPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return types.ConversionFailed
	}

	doc.Pages = res.Pages
	doc.Blocks = res.Blocks
	doc.Headings = res.Headings
	doc.ConvertedAt = time.Now().UTC()

	content, err := addFrontmatter(*doc, res.Markdown)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return types.ConversionFailed
	}

	if err := os.WriteFile(mdPath, []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return types.ConversionFailed
	}

	doc.MarkdownPath = mdPath
	doc.ConversionStatus = types.ConversionDone
	fmt.Fprintf(w, "converted: %s (%d pages, %d blocks)\n", doc.ID, res.Pages, res.Blocks)
	return types.ConversionDone
}

// ConvertBatch processes documents through the converter, printing per-file
// status to w and returning a summary.
func ConvertBatch(c Converter, docs []*types.Document, docsDir string, w io.Writer) BatchResult {
	result := BatchResult{Documents: docs}
	for _, d := range docs {
		switch ConvertDocument(c, d, docsDir, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertPaths builds Document records from raw PDF paths and delegates to
// ConvertBatch. Each path becomes a minimal Document with an ID derived
// from the filename.
func ConvertPaths(c Converter, pdfPaths []string, docsDir string, w io.Writer) BatchResult {
	docs := make([]*types.Document, len(pdfPaths))
	for i, p := range pdfPaths {
		docs[i] = &types.Document{
			ID:      DocumentID(p),
			PDFPath: p,
		}
	}
	return ConvertBatch(c, docs, docsDir, w)
}

// ListUnconverted returns Document records for every PDF under
// docsDir/raw/ that has no Markdown output yet.
func ListUnconverted(docsDir string) ([]*types.Document, error) {
	raw := filepath.Join(docsDir, rawDir)
	entries, err := os.ReadDir(raw)
	if err != nil {
		return nil, fmt.Errorf("reading raw directory %s: %w", raw, err)
	}

	var docs []*types.Document
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		p := filepath.Join(raw, e.Name())
		id := DocumentID(p)
		if _, err := os.Stat(filepath.Join(docsDir, markdownDir, id+".md")); err == nil {
			continue
		}
		docs = append(docs, &types.Document{ID: id, PDFPath: p})
	}
	return docs, nil
}

/// DocumentID derives a document slug from a PDF path: the base filename
// without its extension.
func DocumentID(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
