package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf-to-md/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConvertConfig holds the tunables for PDF-to-Markdown conversion. The zero
// value selects the defaults documented on each field.
type ConvertConfig struct {
	// ParagraphGap is the vertical distance, in PDF points, above which a
	// new paragraph starts. When zero, 0.7 times the document body size is
	// used, so the threshold tracks the document's own typography.
	ParagraphGap float64 `json:"paragraph_gap" yaml:"paragraph_gap"`

	// IndentUnit is the horizontal indentation, in PDF points, that maps to
	// one list nesting level (default 18).
	IndentUnit float64 `json:"indent_unit" yaml:"indent_unit"`

	// MaxHeadingLevels is the number of heading levels to recognize,
	// counted from the largest font size down (default 6, the Markdown
	// maximum).
	MaxHeadingLevels int `json:"max_heading_levels" yaml:"max_heading_levels"`

	// PageComments inserts an HTML comment marking each page boundary in
	// the output.
	PageComments bool `json:"page_comments" yaml:"page_comments"`

	// Verify re-parses the emitted Markdown and warns when the heading
	// outline does not match the classified blocks.
	Verify bool `json:"verify" yaml:"verify"`

	// DocsDir is the base directory for documents (contains raw/, markdown/, index/).
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`
}

// DefaultIndentUnit is the fallback list indentation unit in points.
const DefaultIndentUnit = 18.0

// DefaultMaxHeadingLevels is the fallback number of recognized heading levels.
const DefaultMaxHeadingLevels = 6

// IndentUnitOrDefault returns the configured indent unit or the default.
func (c ConvertConfig) IndentUnitOrDefault() float64 {
	if c.IndentUnit > 0 {
		return c.IndentUnit
	}
	return DefaultIndentUnit
}

// MaxHeadingLevelsOrDefault returns the configured heading level count,
// clamped to the Markdown maximum of 6.
func (c ConvertConfig) MaxHeadingLevelsOrDefault() int {
	if c.MaxHeadingLevels <= 0 || c.MaxHeadingLevels > 6 {
		return DefaultMaxHeadingLevels
	}
	return c.MaxHeadingLevels
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DocsDir is the base directory for documents (contains raw/).
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`
}

// LedgerConfig holds settings for the conversion ledger.
type LedgerConfig struct {
	// DocsDir is the base directory for documents (contains index/).
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// MaxResults is the default maximum number of listed records (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
}
