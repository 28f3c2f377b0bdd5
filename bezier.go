package glyphtrace

// Curve sampling fidelity. Bounds computed from curve samples silently
// shrink when under-sampled, which corrupts any fit derived from them, so
// every bound that feeds a transform uses BoundsSamples.
const (
	// BoundsSamples is the per-curve sample count for bounds and other
	// alignment-sensitive computations.
	BoundsSamples = 20

	// CoarseSamples is the per-curve sample count for visualization
	// flattening, where speed matters more than exact extrema.
	CoarseSamples = 10
)

// QuadBez represents a quadratic Bezier curve.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Sample returns n+1 points evenly spaced in parameter space.
// The first sample is exactly P0 and the last exactly P2.
func (q QuadBez) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	pts[0] = q.P0
	for i := 1; i < n; i++ {
		pts[i] = q.Eval(float64(i) / float64(n))
	}
	pts[n] = q.P2
	return pts
}

// CubicBez represents a cubic Bezier curve.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Sample returns n+1 points evenly spaced in parameter space.
// The first sample is exactly P0 and the last exactly P3.
func (c CubicBez) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	pts[0] = c.P0
	for i := 1; i < n; i++ {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	pts[n] = c.P3
	return pts
}

// reflect returns the reflection of ctrl about cur, used to resolve the
// implicit control point of smooth curve commands.
func reflect(cur, ctrl Point) Point {
	return Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
}
