// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists conversion records so batch runs can report what
// has been converted, when, and with what result.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "convert.db"
)

// Store manages the conversion ledger SQLite database.
type Store struct {
	db         *sql.DB
	docsDir    string
	maxResults int
}

// NewStore opens or creates the ledger database at docsDir/index/convert.db,
// creating the schema if it does not exist.
func NewStore(cfg types.LedgerConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DocsDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, docsDir: cfg.DocsDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			source_url TEXT,
			pdf_path TEXT NOT NULL,
			markdown_path TEXT,
			pages INTEGER,
			blocks INTEGER,
			headings INTEGER,
			converted_at TEXT,
			conversion_status TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(conversion_status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts or replaces the ledger entry for a document.
func (s *Store) Record(ctx context.Context, doc types.Document) error {
	var convertedAt string
	if !doc.ConvertedAt.IsZero() {
		convertedAt = doc.ConvertedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents
			(id, source_url, pdf_path, markdown_path, pages, blocks, headings, converted_at, conversion_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.SourceURL, doc.PDFPath, doc.MarkdownPath,
		doc.Pages, doc.Blocks, doc.Headings, convertedAt, string(doc.ConversionStatus))
	if err != nil {
		return fmt.Errorf("recording document %s: %w", doc.ID, err)
	}
	return nil
}

// Get returns the ledger entry for one document ID.
func (s *Store) Get(ctx context.Context, id string) (types.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, pdf_path, markdown_path, pages, blocks, headings, converted_at, conversion_status
		FROM documents WHERE id = ?`, id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return types.Document{}, fmt.Errorf("document %q not in ledger", id)
	}
	if err != nil {
		return types.Document{}, fmt.Errorf("reading document %s: %w", id, err)
	}
	return doc, nil
}

// List returns ledger entries ordered by conversion time, newest first.
// A non-empty status filters to that conversion status; limit <= 0 uses the
// configured default.
func (s *Store) List(ctx context.Context, status types.ConversionStatus, limit int) ([]types.Document, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `
		SELECT id, source_url, pdf_path, markdown_path, pages, blocks, headings, converted_at, conversion_status
		FROM documents`
	args := []any{}
	if status != "" {
		query += ` WHERE conversion_status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY converted_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(sc scanner) (types.Document, error) {
	var doc types.Document
	var sourceURL, markdownPath, convertedAt, status sql.NullString
	var pages, blocks, headings sql.NullInt64

	err := sc.Scan(&doc.ID, &sourceURL, &doc.PDFPath, &markdownPath,
		&pages, &blocks, &headings, &convertedAt, &status)
	if err != nil {
		return types.Document{}, err
	}

	doc.SourceURL = sourceURL.String
	doc.MarkdownPath = markdownPath.String
	doc.Pages = int(pages.Int64)
	doc.Blocks = int(blocks.Int64)
	doc.Headings = int(headings.Int64)
	doc.ConversionStatus = types.ConversionStatus(status.String)
	if convertedAt.String != "" {
		if ts, err := time.Parse(time.RFC3339, convertedAt.String); err == nil {
			doc.ConvertedAt = ts
		}
	}
	return doc, nil
}
