// Package visual renders alignment previews: a fitted outline filled into a
// square image with guide strokes drawn on top, so a misaligned fit is
// visible before assets ship.
package visual

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/glyphtrace/glyphtrace"
)

// strokePalette colors strokes by index, cycling when a drawing has more
// strokes than entries.
var strokePalette = []color.RGBA{
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}, // red
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}, // blue
	{R: 0x43, G: 0xa0, B: 0x47, A: 0xff}, // green
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}, // orange
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff}, // purple
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	outlineInk = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
)

// Overlay renders the outline filled in gray over a white background, then
// draws each of the drawing's strokes as a colored polyline with a marker
// dot at every guide point.
//
// The outline must already be in display space (coordinates within
// [0, size]); the drawing's points are normalized to [0, 1] as stored and
// are scaled by size here. Both must derive from the same fit, which is
// exactly what the overlay exists to verify by eye.
func Overlay(outline glyphtrace.Outline, drawing glyphtrace.Drawing, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	fillOutline(img, outline, size)

	scale := float64(size)
	for i, stroke := range drawing.Strokes {
		ink := strokePalette[i%len(strokePalette)]
		drawStroke(img, stroke, scale, size, ink)
	}

	glyphtrace.Logger().Debug("visual: rendered overlay",
		"size", size, "strokes", len(drawing.Strokes), "commands", len(outline))
	return img
}

// fillOutline rasterizes the outline's subpaths as filled polygons,
// flattening curves at coarse fidelity.
func fillOutline(img *image.RGBA, outline glyphtrace.Outline, size int) {
	polys := outline.Flatten(glyphtrace.CoarseSamples)
	if len(polys) == 0 {
		return
	}

	ras := &vector.Rasterizer{}
	ras.Reset(size, size)
	ras.DrawOp = draw.Over
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			ras.LineTo(float32(p.X), float32(p.Y))
		}
		ras.ClosePath()
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(outlineInk), image.Point{})
}

// drawStroke draws one stroke's polyline and point markers.
func drawStroke(img *image.RGBA, stroke glyphtrace.Stroke, scale float64, size int, ink color.RGBA) {
	const lineWidth = 2.0
	const markerRadius = 4.0

	ras := &vector.Rasterizer{}
	ras.Reset(size, size)
	ras.DrawOp = draw.Over
	for i := 1; i < len(stroke); i++ {
		segmentQuad(ras, stroke[i-1].Mul(scale), stroke[i].Mul(scale), lineWidth)
	}
	for _, p := range stroke {
		markerQuad(ras, p.Mul(scale), markerRadius)
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{})
}

// segmentQuad adds a filled quad covering the line from a to b at the given
// width. The rasterizer has no stroker, so each segment is its own polygon.
func segmentQuad(ras *vector.Rasterizer, a, b glyphtrace.Point, width float64) {
	d := b.Sub(a)
	length := a.Distance(b)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	n := glyphtrace.Pt(-d.Y/length, d.X/length).Mul(width / 2)

	ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	ras.ClosePath()
}

// markerQuad adds a filled diamond centered on p. The rasterizer sums
// signed coverage, so the vertex order must wind the same way as
// segmentQuad or an overlapping line segment cancels the marker out.
func markerQuad(ras *vector.Rasterizer, p glyphtrace.Point, r float64) {
	ras.MoveTo(float32(p.X), float32(p.Y-r))
	ras.LineTo(float32(p.X-r), float32(p.Y))
	ras.LineTo(float32(p.X), float32(p.Y+r))
	ras.LineTo(float32(p.X+r), float32(p.Y))
	ras.ClosePath()
}
