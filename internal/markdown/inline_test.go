// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"testing"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

func TestFormatRuns(t *testing.T) {
	tests := []struct {
		name string
		runs []types.Run
		want string
	}{
		{
			name: "plain text passes through",
			runs: []types.Run{{Text: "hello world"}},
			want: "hello world",
		},
		{
			name: "bold run",
			runs: []types.Run{{Text: "bold", Bold: true}},
			want: "**bold**",
		},
		{
			name: "italic run",
			runs: []types.Run{{Text: "slanted", Italic: true}},
			want: "*slanted*",
		},
		{
			name: "bold italic run",
			runs: []types.Run{{Text: "both", Bold: true, Italic: true}},
			want: "***both***",
		},
		{
			name: "adjacent same-style runs merge into one marker pair",
			runs: []types.Run{
				{Text: "a", Bold: true},
				{Text: "b", Bold: true},
			},
			want: "**ab**",
		},
		{
			name: "mixed styles in one block",
			runs: []types.Run{
				{Text: "Second item with "},
				{Text: "bold", Bold: true},
				{Text: " part."},
			},
			want: "Second item with **bold** part.",
		},
		{
			name: "plain space between bold words stays inside the markers",
			runs: []types.Run{
				{Text: "very", Bold: true},
				{Text: " "},
				{Text: "bold", Bold: true},
			},
			want: "**very bold**",
		},
		{
			name: "edge whitespace moves outside the markers",
			runs: []types.Run{
				{Text: " padded ", Bold: true},
				{Text: "tail"},
			},
			want: " **padded** tail",
		},
		{
			name: "markdown-significant characters are escaped",
			runs: []types.Run{{Text: `a*b_c\d`}},
			want: `a\*b\_c\\d`,
		},
		{
			name: "leading hash is escaped",
			runs: []types.Run{{Text: "#hashtag not a heading"}},
			want: `\#hashtag not a heading`,
		},
		{
			name: "empty runs are dropped",
			runs: []types.Run{
				{Text: ""},
				{Text: "kept"},
				{Text: "", Bold: true},
			},
			want: "kept",
		},
		{
			name: "whitespace-only block renders as nothing",
			runs: []types.Run{{Text: "   "}},
			want: "",
		},
		{
			name: "no runs",
			runs: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRuns(tt.runs); got != tt.want {
				t.Errorf("FormatRuns() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Merging is associative: however the upstream grouped the characters into
// runs, the formatted string only depends on per-character style.
func TestFormatRuns_MergeAssociative(t *testing.T) {
	groupings := [][]types.Run{
		{
			{Text: "plain "},
			{Text: "strong", Bold: true},
			{Text: " tail"},
		},
		{
			{Text: "pla"}, {Text: "in "},
			{Text: "str", Bold: true}, {Text: "ong", Bold: true},
			{Text: " ta"}, {Text: "il"},
		},
		{
			{Text: "p"}, {Text: "l"}, {Text: "a"}, {Text: "i"}, {Text: "n"}, {Text: " "},
			{Text: "strong", Bold: true},
			{Text: " tail"},
		},
	}

	want := FormatRuns(groupings[0])
	for i, runs := range groupings[1:] {
		if got := FormatRuns(runs); got != want {
			t.Errorf("grouping %d: FormatRuns() = %q, want %q", i+1, got, want)
		}
	}
}
