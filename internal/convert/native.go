// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"

	"github.com/adryserage/pdf-to-md/internal/classify"
	"github.com/adryserage/pdf-to-md/internal/extract"
	"github.com/adryserage/pdf-to-md/internal/markdown"
	"github.com/adryserage/pdf-to-md/internal/profile"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

// NativeConverter runs the in-process span pipeline: extraction, size
// profiling, block classification, and Markdown rendering. The size profile
// is computed over the whole document before any classification, so heading
// levels never depend on processing order.
type NativeConverter struct {
	source extract.Source
	cfg    types.ConvertConfig
	warn   io.Writer
}

// NewNativeConverter creates a converter over the given span source.
// Warnings (verify mismatches, skipped pages) go to warn; pass io.Discard
// to silence them.
func NewNativeConverter(source extract.Source, cfg types.ConvertConfig, warn io.Writer) *NativeConverter {
	return &NativeConverter{source: source, cfg: cfg, warn: warn}
}

// Convert reads the PDF at pdfPath and returns its Markdown rendition. An
// extraction failure is fatal — no downstream stage can run without spans —
// while a document with no text simply yields empty output.
func (n *NativeConverter) Convert(pdfPath string) (Result, error) {
	spans, pages, err := n.source.Spans(pdfPath)
	if err != nil {
		return Result{}, fmt.Errorf("extracting spans: %w", err)
	}

	prof := profile.Build(spans, n.cfg.MaxHeadingLevelsOrDefault())
	blocks := classify.New(prof, n.cfg).Classify(spans)
	md := markdown.Render(blocks, markdown.Options{PageComments: n.cfg.PageComments})

	res := Result{Markdown: md, Pages: pages}
	for _, b := range blocks {
		if b.Kind == types.BlockBlank {
			continue
		}
		res.Blocks++
		if b.Kind == types.BlockHeading {
			res.Headings++
		}
	}

	if n.cfg.Verify {
		if got := len(markdown.Outline([]byte(md))); got != res.Headings {
			fmt.Fprintf(n.warn, "warning: %s: %d headings classified but %d recovered from output\n",
				pdfPath, res.Headings, got)
		}
	}

	return res, nil
}
