// Package script splits raw text into maximal runs of uniform script class,
// separating CJK characters from everything else so each side can receive
// its own syllabification treatment.
package script

import (
	"strings"
	"unicode"
)

// Segment is a maximal run of characters sharing one script class. Text is
// trimmed of leading and trailing whitespace; whitespace-only runs are
// discarded during splitting.
type Segment struct {
	Text string
	Han  bool
}

// hanRanges covers the CJK unified ideograph blocks, extensions included.
var hanRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // Extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // Unified Ideographs
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // Compatibility Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2a6df, Stride: 1}, // Extension B
		{Lo: 0x2a700, Hi: 0x2ebef, Stride: 1}, // Extensions C-F
	},
}

// IsHan reports whether a rune is a CJK ideograph.
func IsHan(r rune) bool {
	return unicode.Is(hanRanges, r)
}

// ContainsHan reports whether text holds at least one CJK ideograph.
func ContainsHan(text string) bool {
	return strings.ContainsFunc(text, IsHan)
}

// Split partitions text into ordered segments of uniform script class in one
// linear scan. Ignoring dropped whitespace-only runs, concatenating the
// segments preserves the order and content of all non-whitespace characters.
func Split(text string) []Segment {
	var (
		segments []Segment
		run      strings.Builder
		runHan   bool
		started  bool
	)

	flush := func() {
		if !started {
			return
		}
		if trimmed := strings.TrimSpace(run.String()); trimmed != "" {
			segments = append(segments, Segment{Text: trimmed, Han: runHan})
		}
		run.Reset()
	}

	for _, r := range text {
		han := IsHan(r)
		if started && han != runHan {
			flush()
			started = false
		}
		if !started {
			runHan = han
			started = true
		}
		run.WriteRune(r)
	}
	flush()

	return segments
}
