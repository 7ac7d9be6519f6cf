// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// frontmatter is the YAML header prepended to converted Markdown.
type frontmatter struct {
	DocumentID  string `yaml:"document_id"`
	SourcePDF   string `yaml:"source_pdf"`
	ConvertedAt string `yaml:"converted_at"`
	Pages       int    `yaml:"pages,omitempty"`
	Blocks      int    `yaml:"blocks,omitempty"`
}

// addFrontmatter prepends YAML frontmatter to the converted Markdown body.
func addFrontmatter(doc types.Document, body string) (string, error) {
	fm := frontmatter{
		DocumentID:  doc.ID,
		SourcePDF:   doc.PDFPath,
		ConvertedAt: doc.ConvertedAt.Format(time.RFC3339),
		Pages:       doc.Pages,
		Blocks:      doc.Blocks,
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
