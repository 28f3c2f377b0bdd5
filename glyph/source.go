package glyph

import (
	"fmt"
	"os"

	"github.com/glyphtrace/glyphtrace"
)

// Source is a parsed font ready for outline extraction. A Source is safe
// for concurrent use if its backend's Font is; both built-in backends
// serialize access internally.
type Source struct {
	font  Font
	cache *outlineCache // nil when caching is disabled
}

// NewSource parses font data with the configured backend.
func NewSource(data []byte, opts ...Option) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fnt, err := getBackend(cfg.backendName).Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parsing font: %w", err)
	}
	glyphtrace.Logger().Debug("glyph: parsed font",
		"backend", cfg.backendName, "family", fnt.Family(), "upem", fnt.UnitsPerEm())

	s := &Source{font: fnt}
	if cfg.cacheLimit > 0 {
		s.cache = newOutlineCache(cfg.cacheLimit)
	}
	return s, nil
}

// NewSourceFromFile reads and parses a font file.
func NewSourceFromFile(path string, opts ...Option) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: reading font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Family returns the font family name, or empty if not available.
func (s *Source) Family() string {
	return s.font.Family()
}

// Em returns the font's units per em, the native square reference size
// that outline coordinates are expressed against.
func (s *Source) Em() float64 {
	return s.font.UnitsPerEm()
}

// Extract returns the outline of the glyph mapped to r, in font units with
// Y increasing upward. Render targets with Y down should flip the result
// about the em size with Outline.FlipY.
//
// Each contour is closed explicitly. An empty outline (a space character)
// is returned as an empty, non-nil command sequence without error.
func (s *Source) Extract(r rune) (glyphtrace.Outline, error) {
	if s.cache != nil {
		if out, ok := s.cache.get(r); ok {
			return out, nil
		}
	}
	gid, ok := s.font.GlyphIndex(r)
	if !ok {
		return nil, fmt.Errorf("glyph: rune %q (U+%04X): %w", r, r, ErrGlyphNotFound)
	}
	segs, err := s.font.GlyphOutline(gid)
	if err != nil {
		return nil, fmt.Errorf("glyph: rune %q (U+%04X): %w", r, r, err)
	}

	out := make(glyphtrace.Outline, 0, len(segs)+4)
	for _, seg := range segs {
		switch seg.Op {
		case SegMoveTo:
			if len(out) > 0 {
				out = append(out, glyphtrace.Command{Op: glyphtrace.ClosePath})
			}
			out = append(out, glyphtrace.Command{
				Op:   glyphtrace.MoveTo,
				Args: []float64{seg.Args[0].X, seg.Args[0].Y},
			})
		case SegLineTo:
			out = append(out, glyphtrace.Command{
				Op:   glyphtrace.LineTo,
				Args: []float64{seg.Args[0].X, seg.Args[0].Y},
			})
		case SegQuadTo:
			out = append(out, glyphtrace.Command{
				Op: glyphtrace.QuadTo,
				Args: []float64{
					seg.Args[0].X, seg.Args[0].Y,
					seg.Args[1].X, seg.Args[1].Y,
				},
			})
		case SegCubeTo:
			out = append(out, glyphtrace.Command{
				Op: glyphtrace.CubicTo,
				Args: []float64{
					seg.Args[0].X, seg.Args[0].Y,
					seg.Args[1].X, seg.Args[1].Y,
					seg.Args[2].X, seg.Args[2].Y,
				},
			})
		}
	}
	if len(out) > 0 {
		out = append(out, glyphtrace.Command{Op: glyphtrace.ClosePath})
	}
	if s.cache != nil {
		s.cache.put(r, out)
	}
	glyphtrace.Logger().Debug("glyph: extracted outline",
		"rune", string(r), "gid", gid, "commands", len(out))
	return out, nil
}
