// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adryserage/pdf-to-md/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a demonstration PDF",
	Long: `Sample writes a small PDF with a title, sections, paragraphs, inline bold
text, and a bullet list, suitable for exercising the convert pipeline end
to end.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().String("docs-dir", "docs", "base directory for documents")
	sampleCmd.Flags().String("out", "", "output path (default <docs-dir>/raw/sample.pdf)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	docsDir, _ := cmd.Flags().GetString("docs-dir")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(docsDir, "raw", "sample.pdf")
	}

	if err := sample.Generate(out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", out)
	return nil
}
