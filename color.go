package glyphy

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexColorPattern matches "#" followed by exactly six hex digits.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color is an RGBA color with floating-point channels.
//
// A Color is either byte-scale, with each channel in [0, 255], or
// normalized, with each channel in [0, 1]. ParseHex returns byte-scale
// colors; ParseHexNormalized and Normalize return normalized ones.
// TextEntry colors are always normalized.
type Color struct {
	R, G, B, A float64
}

// ParseHex parses a "#rrggbb" string into a byte-scale color.
// Digits are case-insensitive. Alpha is always 255.
//
// Any other shape of input, including a missing "#", fewer or more than
// six digits, or a non-hex digit, returns a *FormatError wrapping
// ErrInvalidFormat.
func ParseHex(s string) (Color, error) {
	if !hexColorPattern.MatchString(s) {
		return Color{}, &FormatError{Input: s}
	}

	var ch [3]float64
	for i := range ch {
		chunk := s[1+2*i : 3+2*i]
		v, err := strconv.ParseUint(chunk, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q in %q: %v", ErrDecode, chunk, s, err)
		}
		ch[i] = float64(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// ParseHexNormalized parses a "#rrggbb" string into a normalized color.
// It is ParseHex followed by Normalize, so alpha is exactly 1.
func ParseHexNormalized(s string) (Color, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return c.Normalize(), nil
}

// MustParseHex is like ParseHexNormalized but panics on error.
// Use only with string literals.
func MustParseHex(s string) Color {
	c, err := ParseHexNormalized(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize converts a byte-scale color to a normalized one by dividing
// every channel, alpha included, by 255.
func (c Color) Normalize() Color {
	return Color{
		R: c.R / 255,
		G: c.G / 255,
		B: c.B / 255,
		A: c.A / 255,
	}
}

// Array returns the channels as a [R, G, B, A] array for GPU-facing code.
func (c Color) Array() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Hex formats a normalized color as "#rrggbb". Alpha is dropped.
// Channels outside [0, 1] are clamped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DefaultTextColor is the color used when no line color is configured.
var DefaultTextColor = MustParseHex("#af4573")
