package glyphtrace

// Fit is a uniform scale followed by a translation. It maps an outline's
// native bounding box into a square viewport of a given side length,
// preserving aspect ratio and centering the shorter dimension.
//
// A Fit is a restricted affine transform: no rotation, no shear, one scale
// factor for both axes. That restriction is what makes Invert exact and
// keeps horizontal and vertical line commands axis-aligned under Transform.
type Fit struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// NewFit computes the transform that maps bounds into a target-sized square
// viewport. The scale is the smaller of the per-axis ratios so the whole box
// fits, and each translation centers the leftover space on its axis.
//
// Returns ErrDegenerateBounds when the bounds have zero (or negative) width
// or height, since no finite scale exists for a degenerate box.
func NewFit(b Bounds, target float64) (Fit, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return Fit{}, ErrDegenerateBounds
	}
	scale := target / b.Width
	if s := target / b.Height; s < scale {
		scale = s
	}
	f := Fit{
		Scale:      scale,
		TranslateX: (target-b.Width*scale)/2 - b.Left*scale,
		TranslateY: (target-b.Height*scale)/2 - b.Top*scale,
	}
	Logger().Debug("glyphtrace: computed fit",
		"scale", f.Scale, "tx", f.TranslateX, "ty", f.TranslateY,
		"target", target,
		"left", b.Left, "top", b.Top, "width", b.Width, "height", b.Height)
	return f, nil
}

// Apply maps a point from native coordinates into viewport coordinates.
func (f Fit) Apply(p Point) Point {
	return Point{
		X: p.X*f.Scale + f.TranslateX,
		Y: p.Y*f.Scale + f.TranslateY,
	}
}

// Invert maps a viewport point back into native coordinates. It is the
// exact inverse of Apply up to floating-point rounding.
func (f Fit) Invert(p Point) Point {
	return Point{
		X: (p.X - f.TranslateX) / f.Scale,
		Y: (p.Y - f.TranslateY) / f.Scale,
	}
}
