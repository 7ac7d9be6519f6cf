// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adryserage/pdf-to-md/internal/fetch"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "pdf-to-md/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [urls...]",
	Short: "Download PDF files into the documents directory",
	Long: `Fetch downloads PDFs from the given URLs into <docs-dir>/raw. Rate-limit
responses are retried with backoff, and already-downloaded files are
skipped.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	fetchCmd.Flags().String("docs-dir", "docs", "base directory for documents")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PDF URLs")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}
	docsDir, _ := cmd.Flags().GetString("docs-dir")

	f := fetch.NewFetcher(types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DocsDir: docsDir,
	})

	var failed int
	for i, rawURL := range args {
		if i > 0 {
			time.Sleep(delay)
		}
		if _, err := f.Fetch(cmd.Context(), rawURL, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", rawURL, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d download(s) failed", failed)
	}
	return nil
}
