package glyphtrace

// GuidePath builds a tracing-guide outline from the drawing's strokes, one
// subpath per stroke. Each stroke opens with a MoveTo at its first point.
// With smooth set, subsequent points join with quadratic curves: the first
// segment uses the previous point as its control, later segments use the
// midpoint of the previous and current points, which rounds off the corners
// of sparsely sampled hand-authored strokes. Without smooth, points join
// with straight lines.
//
// Empty strokes contribute nothing. The drawing's points must already be in
// the coordinate space the guide is rendered in; project with
// ToOutlineSpace first when they are stored normalized.
func (d Drawing) GuidePath(smooth bool) Outline {
	var out Outline
	for _, stroke := range d.Strokes {
		if len(stroke) == 0 {
			continue
		}
		out = append(out, Command{
			Op:   MoveTo,
			Args: []float64{stroke[0].X, stroke[0].Y},
		})
		for i := 1; i < len(stroke); i++ {
			p := stroke[i]
			if !smooth {
				out = append(out, Command{
					Op:   LineTo,
					Args: []float64{p.X, p.Y},
				})
				continue
			}
			ctrl := stroke[i-1]
			if i > 1 {
				ctrl = ctrl.Lerp(p, 0.5)
			}
			out = append(out, Command{
				Op:   QuadTo,
				Args: []float64{ctrl.X, ctrl.Y, p.X, p.Y},
			})
		}
	}
	return out
}
