package glyphy

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphy package.
var (
	// ErrInvalidFormat is returned when a color string is not "#" followed
	// by exactly six hexadecimal digits.
	ErrInvalidFormat = errors.New("glyphy: invalid hex color format")

	// ErrDecode is returned when a two-digit channel fails to decode.
	ErrDecode = errors.New("glyphy: hex chunk decode failed")

	// ErrInvalidScale is returned when a text entry scale is not a
	// positive finite number.
	ErrInvalidScale = errors.New("glyphy: invalid text scale")

	// ErrFontLoad is returned when the renderer cannot load its font.
	ErrFontLoad = errors.New("glyphy: font load failed")
)

// FormatError reports a color string that failed the format check.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("glyphy: %q is not in #rrggbb hex format", e.Input)
}

// Unwrap returns ErrInvalidFormat so errors.Is matches the sentinel.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
