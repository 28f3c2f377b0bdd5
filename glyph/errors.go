package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrGlyphNotFound is returned when the font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("glyph: no glyph for rune")

	// ErrNoOutline is returned when a glyph exists but carries no vector
	// outline, such as a bitmap-only or color glyph.
	ErrNoOutline = errors.New("glyph: glyph has no vector outline")
)
