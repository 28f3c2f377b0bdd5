package glyph

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/glyphtrace/glyphtrace"
)

// gotextBackend parses fonts with github.com/go-text/typesetting.
type gotextBackend struct{}

func (gotextBackend) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &gotextFont{face: face}, nil
}

// gotextFont wraps a typesetting face. Outline coordinates already use the
// Y-up convention, so segments convert without flipping.
type gotextFont struct {
	face *font.Face
}

func (f *gotextFont) Family() string {
	return f.face.Describe().Family
}

func (f *gotextFont) UnitsPerEm() float64 {
	return float64(f.face.Upem())
}

func (f *gotextFont) GlyphIndex(r rune) (uint16, bool) {
	gid, ok := f.face.Cmap.Lookup(r)
	if !ok {
		return 0, false
	}
	return uint16(gid), true
}

func (f *gotextFont) GlyphOutline(gid uint16) ([]Segment, error) {
	data := f.face.GlyphData(font.GID(gid))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, ErrNoOutline
	}

	segs := make([]Segment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		seg := Segment{}
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			seg.Op = SegMoveTo
			seg.Args[0] = gotextPt(s.Args[0])
		case opentype.SegmentOpLineTo:
			seg.Op = SegLineTo
			seg.Args[0] = gotextPt(s.Args[0])
		case opentype.SegmentOpQuadTo:
			seg.Op = SegQuadTo
			seg.Args[0] = gotextPt(s.Args[0])
			seg.Args[1] = gotextPt(s.Args[1])
		case opentype.SegmentOpCubeTo:
			seg.Op = SegCubeTo
			seg.Args[0] = gotextPt(s.Args[0])
			seg.Args[1] = gotextPt(s.Args[1])
			seg.Args[2] = gotextPt(s.Args[2])
		default:
			continue
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func gotextPt(p opentype.SegmentPoint) glyphtrace.Point {
	return glyphtrace.Pt(float64(p.X), float64(p.Y))
}
