package glyphtrace

// Bounds is an axis-aligned bounding box in the outline's native coordinate
// units. Top is the minimum Y: native Y may grow downward or upward, Bounds
// itself is agnostic and callers interpret.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns Left + Width.
func (b Bounds) Right() float64 { return b.Left + b.Width }

// Bottom returns Top + Height.
func (b Bounds) Bottom() float64 { return b.Top + b.Height }

// Bounds computes the axis-aligned bounding box of the outline.
//
// The current point starts at (0,0). Line commands contribute their
// endpoints; curve commands contribute every one of BoundsSamples+1 sampled
// points, because a curve's extremum can lie strictly between its control
// points. Arc commands contribute their endpoint only, an approximation
// that under-reports bounds for arcs whose extrema lie inside the arc span;
// the outlines this pipeline targets contain no arcs.
//
// Returns ErrEmptyOutline when no command carries a coordinate.
func (o Outline) Bounds() (Bounds, error) {
	var (
		min, max Point
		has      bool
	)
	fold := func(p Point) {
		if !has {
			min, max = p, p
			has = true
			return
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	// ClosePath only returns to the subpath start, which was folded when its
	// MoveTo ran, so the close callback must not touch the accumulators: a
	// bare "Z" carries no coordinate at all.
	o.walk(BoundsSamples, fold, fold, func(Point) {})
	if !has {
		return Bounds{}, ErrEmptyOutline
	}
	return Bounds{
		Left:   min.X,
		Top:    min.Y,
		Width:  max.X - min.X,
		Height: max.Y - min.Y,
	}, nil
}

// Flatten converts the outline into one polyline per subpath, sampling
// curve commands at the given fidelity. Use CoarseSamples for display
// flattening and BoundsSamples when accuracy matters.
func (o Outline) Flatten(samples int) [][]Point {
	var polys [][]Point
	move := func(Point) {
		polys = append(polys, nil)
	}
	visit := func(p Point) {
		if len(polys) == 0 {
			polys = append(polys, nil)
		}
		polys[len(polys)-1] = append(polys[len(polys)-1], p)
	}
	// The closing point completes each polyline.
	o.walk(samples, move, visit, visit)

	out := polys[:0]
	for _, poly := range polys {
		if len(poly) > 0 {
			out = append(out, poly)
		}
	}
	return out
}

// walk interprets the outline's commands in order, threading the current
// point and subpath start, and invokes visit for every point the pen passes
// through: endpoints for line commands, sampled points for curves, the
// endpoint only for arcs. move is invoked at each subpath start, before the
// start point is visited. closed is invoked with the subpath start for each
// ClosePath, separately from visit because a close introduces no new
// coordinate. Commands without a full operand tuple contribute nothing.
func (o Outline) walk(samples int, move, visit, closed func(Point)) {
	var (
		cur, start Point
		prevOp     = ClosePath
		prevCtrl   Point
	)
	for _, c := range o {
		if !c.complete() {
			continue
		}
		switch c.Op {
		case MoveTo:
			cur = c.pt(0)
			start = cur
			move(cur)
			visit(cur)
		case LineTo:
			cur = c.pt(0)
			visit(cur)
		case HLineTo:
			cur.X = c.Args[0]
			visit(cur)
		case VLineTo:
			cur.Y = c.Args[0]
			visit(cur)
		case QuadTo:
			q := QuadBez{P0: cur, P1: c.pt(0), P2: c.pt(2)}
			visitFrom(q.Sample(samples), visit)
			prevCtrl = q.P1
			cur = q.P2
		case SmoothQuadTo:
			ctrl := cur
			if prevOp == QuadTo || prevOp == SmoothQuadTo {
				ctrl = reflect(cur, prevCtrl)
			}
			q := QuadBez{P0: cur, P1: ctrl, P2: c.pt(0)}
			visitFrom(q.Sample(samples), visit)
			prevCtrl = ctrl
			cur = q.P2
		case CubicTo:
			b := CubicBez{P0: cur, P1: c.pt(0), P2: c.pt(2), P3: c.pt(4)}
			visitFrom(b.Sample(samples), visit)
			prevCtrl = b.P2
			cur = b.P3
		case SmoothCubicTo:
			c1 := cur
			if prevOp == CubicTo || prevOp == SmoothCubicTo {
				c1 = reflect(cur, prevCtrl)
			}
			b := CubicBez{P0: cur, P1: c1, P2: c.pt(0), P3: c.pt(2)}
			visitFrom(b.Sample(samples), visit)
			prevCtrl = b.P2
			cur = b.P3
		case ArcTo:
			cur = Pt(c.Args[5], c.Args[6])
			visit(cur)
		case ClosePath:
			cur = start
			closed(cur)
		}
		prevOp = c.Op
	}
}

// visitFrom visits every sampled point except the first, which equals the
// current point and has already been visited.
func visitFrom(pts []Point, visit func(Point)) {
	for _, p := range pts[1:] {
		visit(p)
	}
}
