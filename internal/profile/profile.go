// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile derives a document-wide font size profile that maps font
// sizes to structural roles: body text or heading level 1..6.
//
// The profile is a pure function of the whole span set and is computed
// exactly once per document, before any classification starts. Computing it
// incrementally would make heading-level decisions depend on processing
// order.
package profile

import (
	"math"
	"sort"
	"strings"

	"github.com/adryserage/pdf-to-md/pkg/types"
)

// Profile holds the body text size and the descending heading thresholds for
// one document. Immutable after Build returns. A document with a single font
// size has no thresholds and therefore no headings.
type Profile struct {
	// BodySize is the prevailing body text size in points, quantized.
	BodySize float64

	// Thresholds are the distinct sizes assigned to heading levels, in
	// strictly descending order: Thresholds[0] is level 1. Every threshold
	// is strictly greater than BodySize.
	Thresholds []float64
}

// Empty reports whether the profile was built from a document with no text.
func (p Profile) Empty() bool {
	return p.BodySize == 0
}

// MaxLevel returns the deepest heading level the profile can assign.
func (p Profile) MaxLevel() int {
	return len(p.Thresholds)
}

// LevelFor maps a font size to a heading level (1-based), or 0 when the size
// is body-sized or otherwise not a recognized heading size.
func (p Profile) LevelFor(size float64) int {
	q := Quantize(size)
	for i, t := range p.Thresholds {
		if q == t {
			return i + 1
		}
	}
	return 0
}

// quantum is the size bucket width in points. Sizes are bucketed before
// counting so that sub-point rendering jitter does not split one logical
// size into several.
const quantum = 0.5

// Quantize rounds a font size to the nearest size bucket.
func Quantize(size float64) float64 {
	return math.Round(size/quantum) * quantum
}

// Build scans all spans once and returns the document's size profile.
// maxLevels caps how many heading levels are assigned (at most 6). Spans
// with empty text are ignored; a document with no text yields an empty
// profile. Build never fails.
func Build(spans []types.Span, maxLevels int) Profile {
	if maxLevels <= 0 || maxLevels > 6 {
		maxLevels = types.DefaultMaxHeadingLevels
	}

	// Weight each size by the amount of text set in it, so a long body
	// paragraph outweighs a short title even when both are one span.
	weights := make(map[float64]int)
	var sizes []float64
	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if text == "" || s.FontSize <= 0 {
			continue
		}
		q := Quantize(s.FontSize)
		if weights[q] == 0 {
			sizes = append(sizes, q)
		}
		weights[q] += len(text)
	}
	if len(sizes) == 0 {
		return Profile{}
	}

	body := weightedMode(sizes, weights)

	var larger []float64
	for _, q := range sizes {
		if q > body {
			larger = append(larger, q)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(larger)))
	if len(larger) > maxLevels {
		larger = larger[:maxLevels]
	}

	return Profile{BodySize: body, Thresholds: larger}
}

// weightedMode returns the size with the largest total text weight. When no
// single size is plurality-frequent (two or more sizes tie for the largest
// weight), the weighted median is used instead.
func weightedMode(sizes []float64, weights map[float64]int) float64 {
	best, bestWeight, ties := 0.0, -1, 0
	for _, q := range sizes {
		switch w := weights[q]; {
		case w > bestWeight:
			best, bestWeight, ties = q, w, 1
		case w == bestWeight:
			ties++
		}
	}
	if ties == 1 {
		return best
	}
	return weightedMedian(sizes, weights)
}

// weightedMedian returns the size at the midpoint of the cumulative text
// weight distribution.
func weightedMedian(sizes []float64, weights map[float64]int) float64 {
	sorted := append([]float64(nil), sizes...)
	sort.Float64s(sorted)

	var total int
	for _, q := range sorted {
		total += weights[q]
	}
	half := total / 2

	var cum int
	for _, q := range sorted {
		cum += weights[q]
		if cum > half {
			return q
		}
	}
	return sorted[len(sorted)-1]
}
