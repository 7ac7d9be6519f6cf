// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adryserage/pdf-to-md/internal/ledger"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Query and export the conversion ledger",
	Long: `Ledger lists conversion records from the SQLite ledger under
<docs-dir>/index. Records can be filtered by conversion status, printed
as JSON, or exported to YAML and JSON files.`,
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().String("docs-dir", "docs", "base directory for documents (contains index/)")
	ledgerCmd.Flags().String("status", "", "filter by conversion status: none, converted, failed")
	ledgerCmd.Flags().Int("limit", 0, "maximum number of records to list (default 50)")
	ledgerCmd.Flags().Bool("json", false, "output records as JSON")
	ledgerCmd.Flags().Bool("export", false, "export the ledger to YAML and JSON files under index/")

	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, args []string) error {
	docsDir, _ := cmd.Flags().GetString("docs-dir")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	export, _ := cmd.Flags().GetBool("export")

	store, err := ledger.NewStore(types.LedgerConfig{DocsDir: docsDir, MaxResults: limit})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if export {
		if err := store.ExportYAML(ctx); err != nil {
			return err
		}
		if err := store.ExportJSON(ctx); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "exported ledger to YAML and JSON")
		return nil
	}

	docs, err := store.List(ctx, types.ConversionStatus(status), limit)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPAGES\tHEADINGS\tCONVERTED")
	for _, d := range docs {
		converted := ""
		if !d.ConvertedAt.IsZero() {
			converted = d.ConvertedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			d.ID, d.ConversionStatus, d.Pages, d.Headings, converted)
	}
	return w.Flush()
}
