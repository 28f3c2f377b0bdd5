// Package glyph extracts letter outlines from font files and hands them to
// the geometry core as path command sequences in the font's native space.
package glyph

import "github.com/glyphtrace/glyphtrace"

// Backend is an interface for font parsing backends. This abstraction
// allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/sfnt; a second
// backend built on github.com/go-text/typesetting is registered as "gotext".
type Backend interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	Parse(data []byte) (Font, error)
}

// Font represents a parsed font file. This interface abstracts the
// underlying font representation.
//
// All outline coordinates are in font units with Y increasing upward,
// regardless of the backend's native convention.
type Font interface {
	// Family returns the font family name, or empty if not available.
	Family() string

	// UnitsPerEm returns the font's units per em.
	UnitsPerEm() float64

	// GlyphIndex returns the glyph index for a rune. ok is false when the
	// font has no glyph for the rune.
	GlyphIndex(r rune) (gid uint16, ok bool)

	// GlyphOutline returns the outline segments for a glyph in font units.
	// An empty segment list (a space, for instance) is not an error.
	GlyphOutline(gid uint16) ([]Segment, error)
}

// SegmentOp is the type of outline segment.
type SegmentOp uint8

const (
	// SegMoveTo starts a new contour at Args[0].
	SegMoveTo SegmentOp = iota

	// SegLineTo draws a line to Args[0].
	SegLineTo

	// SegQuadTo draws a quadratic curve; Args[0] is the control point,
	// Args[1] the endpoint.
	SegQuadTo

	// SegCubeTo draws a cubic curve; Args[0] and Args[1] are control
	// points, Args[2] the endpoint.
	SegCubeTo
)

// Segment is one outline segment in font units, Y up.
type Segment struct {
	Op   SegmentOp
	Args [3]glyphtrace.Point
}

// backendRegistry holds registered font backends.
var backendRegistry = map[string]Backend{
	"ximage": ximageBackend{},
	"gotext": gotextBackend{},
}

// defaultBackendName is the name of the default backend.
const defaultBackendName = "ximage"

// RegisterBackend registers a custom font backend. This allows users to
// provide their own parsing implementation.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// getBackend returns the backend by name, or the default if not found.
func getBackend(name string) Backend {
	if b, ok := backendRegistry[name]; ok {
		return b
	}
	return backendRegistry[defaultBackendName]
}
