package glyphtrace

// Op identifies a path drawing command. All ops describe absolute
// coordinates: the parser resolves relative (lowercase) command letters
// against the running current point before emitting commands.
type Op uint8

const (
	// MoveTo starts a new subpath at the given point.
	MoveTo Op = iota

	// LineTo draws a straight line to the given point.
	LineTo

	// HLineTo draws a horizontal line to the given X coordinate.
	HLineTo

	// VLineTo draws a vertical line to the given Y coordinate.
	VLineTo

	// CubicTo draws a cubic Bezier curve (two control points, endpoint).
	CubicTo

	// SmoothCubicTo draws a cubic Bezier whose first control point is the
	// reflection of the previous command's second control point.
	SmoothCubicTo

	// QuadTo draws a quadratic Bezier curve (one control point, endpoint).
	QuadTo

	// SmoothQuadTo draws a quadratic Bezier whose control point is the
	// reflection of the previous command's control point.
	SmoothQuadTo

	// ArcTo draws an elliptical arc:
	// (radiusX, radiusY, xAxisRotation, largeArcFlag, sweepFlag, endX, endY).
	ArcTo

	// ClosePath closes the current subpath.
	ClosePath
)

// opArities maps each Op to the number of operands of one instance.
var opArities = [...]int{
	MoveTo:        2,
	LineTo:        2,
	HLineTo:       1,
	VLineTo:       1,
	CubicTo:       6,
	SmoothCubicTo: 4,
	QuadTo:        4,
	SmoothQuadTo:  2,
	ArcTo:         7,
	ClosePath:     0,
}

// opLetters maps each Op to its absolute command letter.
var opLetters = [...]byte{
	MoveTo:        'M',
	LineTo:        'L',
	HLineTo:       'H',
	VLineTo:       'V',
	CubicTo:       'C',
	SmoothCubicTo: 'S',
	QuadTo:        'Q',
	SmoothQuadTo:  'T',
	ArcTo:         'A',
	ClosePath:     'Z',
}

// Arity returns the number of operands a single instance of the op carries.
func (op Op) Arity() int {
	return opArities[op]
}

// Letter returns the absolute (uppercase) command letter for the op.
func (op Op) Letter() byte {
	return opLetters[op]
}

// String returns the command letter as a string.
func (op Op) String() string {
	return string(opLetters[op])
}

// Command is a single drawing command with absolute coordinate operands.
// Args normally has exactly Op.Arity() entries; a command letter that
// appeared in the input with no operands is retained with empty Args.
type Command struct {
	Op   Op
	Args []float64
}

// complete reports whether the command carries its full operand tuple.
func (c Command) complete() bool {
	return len(c.Args) >= c.Op.Arity()
}

// pt returns the operand pair starting at index i as a Point.
func (c Command) pt(i int) Point {
	return Point{X: c.Args[i], Y: c.Args[i+1]}
}

// Outline is an ordered sequence of drawing commands describing a 2D shape.
// Outlines are derived values: they are recomputed on demand from a path
// string and never mutated in place.
type Outline []Command

// Clone returns a deep copy of the outline.
func (o Outline) Clone() Outline {
	out := make(Outline, len(o))
	for i, c := range o {
		args := make([]float64, len(c.Args))
		copy(args, c.Args)
		out[i] = Command{Op: c.Op, Args: args}
	}
	return out
}
