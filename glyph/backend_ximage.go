package glyph

import (
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/glyphtrace/glyphtrace"
)

// ximageBackend parses fonts with golang.org/x/image/font/sfnt.
type ximageBackend struct{}

func (ximageBackend) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &ximageFont{font: f}, nil
}

// ximageFont wraps an sfnt.Font. sfnt methods share a scratch buffer, so
// all access is serialized behind the mutex.
type ximageFont struct {
	mu   sync.Mutex
	font *sfnt.Font
	buf  sfnt.Buffer
}

func (f *ximageFont) Family() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func (f *ximageFont) UnitsPerEm() float64 {
	return float64(f.font.UnitsPerEm())
}

func (f *ximageFont) GlyphIndex(r rune) (uint16, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return uint16(gid), true
}

// GlyphOutline loads the glyph at ppem equal to units per em, so the 26.6
// fixed-point segment coordinates are font units scaled by 64. sfnt's Y
// axis increases downward; coordinates are negated to the Y-up convention.
func (f *ximageFont) GlyphOutline(gid uint16) ([]Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ppem := fixed.Int26_6(f.font.UnitsPerEm()) * 64
	raw, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}

	segs := make([]Segment, 0, len(raw))
	for _, s := range raw {
		seg := Segment{}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegMoveTo
			seg.Args[0] = fixedPt(s.Args[0])
		case sfnt.SegmentOpLineTo:
			seg.Op = SegLineTo
			seg.Args[0] = fixedPt(s.Args[0])
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegQuadTo
			seg.Args[0] = fixedPt(s.Args[0])
			seg.Args[1] = fixedPt(s.Args[1])
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegCubeTo
			seg.Args[0] = fixedPt(s.Args[0])
			seg.Args[1] = fixedPt(s.Args[1])
			seg.Args[2] = fixedPt(s.Args[2])
		default:
			continue
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// fixedPt converts a 26.6 fixed-point coordinate to font units, flipping Y
// from sfnt's Y-down to Y-up.
func fixedPt(p fixed.Point26_6) glyphtrace.Point {
	return glyphtrace.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
