// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adryserage/pdf-to-md/internal/convert"
	"github.com/adryserage/pdf-to-md/internal/extract"
	"github.com/adryserage/pdf-to-md/internal/ledger"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Convert PDF files to structured Markdown",
	Long: `Convert transforms PDF files into structured Markdown. The document's
font sizes are profiled to identify body text and heading levels, then
paragraphs, lists, and headings are reassembled from positioned spans.

Output goes to <docs-dir>/markdown/<id>.md with YAML frontmatter, and each
outcome is recorded in the conversion ledger. Already-converted documents
are skipped.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("docs-dir", "docs", "base directory for documents (contains raw/, markdown/, index/)")
	convertCmd.Flags().Bool("batch", false, "process all unconverted PDFs in docs-dir/raw")
	convertCmd.Flags().Float64("paragraph-gap", 0, "vertical gap in points that starts a new paragraph (default 0.7x body size)")
	convertCmd.Flags().Float64("indent-unit", 0, "indentation in points per list nesting level (default 18)")
	convertCmd.Flags().Int("max-heading-levels", 0, "number of heading levels to recognize (default 6)")
	convertCmd.Flags().Bool("page-comments", false, "insert an HTML comment at each page boundary")
	convertCmd.Flags().Bool("verify", false, "re-parse the output and warn on heading outline mismatches")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	docsDir, _ := cmd.Flags().GetString("docs-dir")
	batch, _ := cmd.Flags().GetBool("batch")

	if !batch && len(args) == 0 {
		return fmt.Errorf("provide one or more PDF paths, or use --batch")
	}

	gap, _ := cmd.Flags().GetFloat64("paragraph-gap")
	indent, _ := cmd.Flags().GetFloat64("indent-unit")
	levels, _ := cmd.Flags().GetInt("max-heading-levels")
	pageComments, _ := cmd.Flags().GetBool("page-comments")
	verify, _ := cmd.Flags().GetBool("verify")

	cfg := types.ConvertConfig{
		ParagraphGap:     gap,
		IndentUnit:       indent,
		MaxHeadingLevels: levels,
		PageComments:     pageComments,
		Verify:           verify,
		DocsDir:          docsDir,
	}

	conv := convert.NewNativeConverter(extract.NewPDFSource(), cfg, os.Stderr)

	var result convert.BatchResult
	if batch {
		docs, err := convert.ListUnconverted(docsDir)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Fprintln(os.Stdout, "nothing to convert")
			return nil
		}
		result = convert.ConvertBatch(conv, docs, docsDir, os.Stdout)
	} else {
		result = convert.ConvertPaths(conv, args, docsDir, os.Stdout)
	}

	if err := recordResults(docsDir, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording ledger: %v\n", err)
	}

	fmt.Fprintf(os.Stdout, "converted %d, skipped %d, failed %d\n",
		result.Converted, result.Skipped, result.Failed)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

func recordResults(docsDir string, result convert.BatchResult) error {
	store, err := ledger.NewStore(types.LedgerConfig{DocsDir: docsDir})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	for _, doc := range result.Documents {
		if err := store.Record(ctx, *doc); err != nil {
			return err
		}
	}
	return nil
}
