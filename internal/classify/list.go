// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"math"
	"regexp"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// listMarkerRe matches the list-marker prefixes recognized at the start of a
// line: bullets (-, *, +, •), numbered markers ("1." or "1)"), and lettered
// markers ("a."). The trailing whitespace is part of the marker.
var listMarkerRe = regexp.MustCompile(`^\s*(?:[-*+•]|\d+[.)]|[a-zA-Z]\.)\s+`)

// listMarker returns the length in bytes of the list-marker prefix of text,
// or 0 when the line does not start with a recognized marker.
func listMarker(text string) int {
	loc := listMarkerRe.FindStringIndex(text)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// listDepth maps a line's horizontal indentation to a nesting depth by
// rounding to the nearest indentation unit. Depth is monotonic in
// indentation and never negative.
func listDepth(indent, unit float64) int {
	d := int(math.Round(indent / unit))
	if d < 0 {
		return 0
	}
	return d
}

// stripMarker removes the first n bytes of text from a run sequence,
// dropping runs that are consumed entirely. The marker normally sits inside
// the first run, but a styled marker can span more than one.
func stripMarker(runs []types.Run, n int) []types.Run {
	out := make([]types.Run, 0, len(runs))
	for _, r := range runs {
		if n >= len(r.Text) {
			n -= len(r.Text)
			continue
		}
		if n > 0 {
			r.Text = r.Text[n:]
			n = 0
		}
		out = append(out, r)
	}
	return out
}
