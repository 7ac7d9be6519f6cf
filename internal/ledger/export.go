// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the full ledger to docsDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	docs, err := s.List(ctx, "", exportLimit)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.docsDir, indexDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the full ledger to docsDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	docs, err := s.List(ctx, "", exportLimit)
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []types.Document{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.docsDir, indexDir, "export.json"), data, 0o644)
}
