package glyphy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Layout constants. The advance factor is an estimate of one character's
// width in units of scale, not a font metric.
const (
	topMargin     = 30.0
	advanceFactor = 1.5
)

// TextEntry is one line of text to draw.
// Color is normalized. Scale is the pixel height of the line and must be
// positive.
type TextEntry struct {
	Text  string
	Color Color
	Scale float64
}

// NewTextEntry builds a TextEntry from a "#rrggbb" color string.
func NewTextEntry(text, hex string, scale float64) (TextEntry, error) {
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return TextEntry{}, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	c, err := ParseHexNormalized(hex)
	if err != nil {
		return TextEntry{}, err
	}
	return TextEntry{Text: text, Color: c, Scale: scale}, nil
}

// Point is a screen-space position. Origin is top-left, Y grows down.
type Point struct {
	X, Y float64
}

// Placement pairs an entry with the top-left corner it is drawn at.
type Placement struct {
	Entry    TextEntry
	Position Point
}

// LayoutPlan is an ordered list of placements, one per input entry.
type LayoutPlan []Placement

// TextLength returns the character count used by the layout: the number
// of runes in the NFC form of s.
func TextLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// Plan stacks entries vertically against the right edge of a viewport.
//
// All entries share one x, derived from the longest entry (first wins on
// ties): viewportWidth - scale*1.5*length. The first entry sits at y=30
// and each following entry is pushed down by the scale of the entry
// before it.
//
// An empty input yields an empty plan.
func Plan(entries []TextEntry, viewportWidth float64) LayoutPlan {
	if len(entries) == 0 {
		return nil
	}

	ref, refLen := entries[0], TextLength(entries[0].Text)
	for _, e := range entries[1:] {
		if n := TextLength(e.Text); n > refLen {
			ref, refLen = e, n
		}
	}

	x := viewportWidth - ref.Scale*advanceFactor*float64(refLen)

	plan := make(LayoutPlan, 0, len(entries))
	var cumulative float64
	for _, e := range entries {
		plan = append(plan, Placement{
			Entry:    e,
			Position: Point{X: x, Y: topMargin + cumulative},
		})
		cumulative += e.Scale
	}

	return plan
}
