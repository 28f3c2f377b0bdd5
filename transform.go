package glyphtrace

// Transform returns a copy of the outline with every coordinate mapped
// through the fit. Horizontal and vertical line commands stay horizontal and
// vertical because the fit scales both axes uniformly. Arc radii scale by
// the fit's scale factor; arc rotation and flags are unchanged.
//
// Commands without a full operand tuple are copied through unmodified.
func (o Outline) Transform(f Fit) Outline {
	out := make(Outline, len(o))
	for i, c := range o {
		out[i] = c
		if !c.complete() || c.Op == ClosePath {
			continue
		}
		args := make([]float64, len(c.Args))
		switch c.Op {
		case HLineTo:
			args[0] = c.Args[0]*f.Scale + f.TranslateX
		case VLineTo:
			args[0] = c.Args[0]*f.Scale + f.TranslateY
		case ArcTo:
			args[0] = c.Args[0] * f.Scale
			args[1] = c.Args[1] * f.Scale
			args[2], args[3], args[4] = c.Args[2], c.Args[3], c.Args[4]
			p := f.Apply(c.pt(5))
			args[5], args[6] = p.X, p.Y
		default:
			for j := 0; j < len(args); j += 2 {
				p := f.Apply(c.pt(j))
				args[j], args[j+1] = p.X, p.Y
			}
		}
		out[i].Args = args
	}
	return out
}

// FlipY returns a copy of the outline mirrored about the horizontal line
// y = axis, mapping every Y coordinate to axis-y. Font outlines carry Y
// growing upward while SVG viewports grow downward; flipping about the em
// size converts between the two.
//
// Horizontal line commands pass through untouched. Vertical line commands
// flip their single operand. Arc commands flip the endpoint and complement
// the sweep flag, since mirroring reverses the arc's turn direction.
func (o Outline) FlipY(axis float64) Outline {
	out := make(Outline, len(o))
	for i, c := range o {
		out[i] = c
		if !c.complete() || c.Op == ClosePath {
			continue
		}
		args := make([]float64, len(c.Args))
		copy(args, c.Args)
		switch c.Op {
		case HLineTo:
			// X-only, unaffected by a vertical mirror.
		case VLineTo:
			args[0] = axis - c.Args[0]
		case ArcTo:
			args[4] = 1 - c.Args[4]
			args[6] = axis - c.Args[6]
		default:
			for j := 1; j < len(args); j += 2 {
				args[j] = axis - c.Args[j]
			}
		}
		out[i].Args = args
	}
	return out
}
