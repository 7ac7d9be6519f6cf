// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown serializes classified blocks to Markdown text and
// re-parses emitted Markdown for structural verification.
package markdown

import (
	"strings"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// escaper backslash-escapes the characters that would otherwise read as
// Markdown emphasis syntax. A leading '#' is handled separately in
// FormatRuns since it only collides at line start.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
)

// FormatRuns renders a block's runs as one Markdown-escaped string with
// emphasis markers. Adjacent runs with identical flags are merged first so
// run boundaries never produce doubled markers ("**a****b**"); empty runs
// are dropped.
func FormatRuns(runs []types.Run) string {
	merged := mergeRuns(runs)

	var b strings.Builder
	for _, r := range merged {
		b.WriteString(emitRun(r))
	}

	out := b.String()
	if strings.HasPrefix(out, "#") {
		out = `\` + out
	}
	return out
}

// mergeRuns folds the run sequence into maximal same-style runs. Runs whose
// text is entirely whitespace carry no visible style of their own, so they
// adopt the style of the preceding run; without this, a plain space between
// two bold words would split one bold run into three.
func mergeRuns(runs []types.Run) []types.Run {
	var out []types.Run
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if strings.TrimSpace(r.Text) == "" && len(out) > 0 {
			out[len(out)-1].Text += r.Text
			continue
		}
		if n := len(out); n > 0 && out[n-1].Bold == r.Bold && out[n-1].Italic == r.Italic {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	// Whole-block whitespace renders as nothing.
	if len(out) == 1 && strings.TrimSpace(out[0].Text) == "" {
		return nil
	}
	return out
}

// emitRun escapes one merged run and wraps it in emphasis markers. Edge
// whitespace stays outside the markers: "**bold **" is not valid emphasis,
// "**bold** " is.
func emitRun(r types.Run) string {
	text := escaper.Replace(r.Text)

	marker := ""
	switch {
	case r.Bold && r.Italic:
		marker = "***"
	case r.Bold:
		marker = "**"
	case r.Italic:
		marker = "*"
	default:
		return text
	}

	left := strings.TrimLeft(text, " \t")
	lead := text[:len(text)-len(left)]
	core := strings.TrimRight(left, " \t")
	if core == "" {
		return text
	}
	trail := left[len(core):]
	return lead + marker + core + marker + trail
}
