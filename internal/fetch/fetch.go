// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads source PDFs into the raw documents directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adryserage/pdf-to-md/internal/httputil"
	"github.com/adryserage/pdf-to-md/pkg/types"
)

// rawDir is the subdirectory under the docs base for source PDFs.
const rawDir = "raw"

const defaultTimeout = 60 * time.Second

// Fetcher downloads PDFs over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
	docsDir   string
}

// NewFetcher creates a Fetcher from the given configuration.
func NewFetcher(cfg types.FetchConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		docsDir:   cfg.DocsDir,
	}
}

// Fetch downloads the PDF at rawURL into docsDir/raw and returns a document
// record pointing at the stored file. An already-downloaded file is reused
// without a network request. Status lines go to w.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, w io.Writer) (*types.Document, error) {
	id, err := slugFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	destDir := filepath.Join(f.docsDir, rawDir)
	destPath := filepath.Join(destDir, id+".pdf")

	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", id)
		return &types.Document{ID: id, SourceURL: rawURL, PDFPath: destPath}, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating raw directory: %w", err)
	}

	if err := f.download(ctx, rawURL, destDir, destPath); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "fetched: %s\n", id)
	return &types.Document{ID: id, SourceURL: rawURL, PDFPath: destPath}, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL, destDir, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, f.client, req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}

	// Download to a temp file first so a partial transfer never leaves a
	// half-written PDF behind the final name.
	tmp, err := os.CreateTemp(destDir, ".download-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, destPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming to %s: %w", destPath, err)
	}
	return nil
}

// slugFromURL derives a document slug from the last path segment of the URL,
// lowercased with the .pdf extension stripped.
func slugFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %s: %w", rawURL, err)
	}
	base := filepath.Base(u.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	if base == "" || base == "." || base == "/" {
		return "", fmt.Errorf("cannot derive document id from URL %s", rawURL)
	}
	return base, nil
}
