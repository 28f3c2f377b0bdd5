package glyphtrace

import "strconv"

// Parse parses a path description string into an outline.
//
// Parsing is best effort and never fails outright: unknown tokens are
// ignored, malformed numeric substrings are dropped from the operand list,
// and a command letter with no trailing operands is retained as a
// zero-operand command. Callers treat an empty outline as "nothing to draw"
// rather than a hard error.
//
// Command letters are case-insensitive for identification; lowercase
// letters denote relative coordinates and are resolved against the running
// current point, so every returned command is absolute. An operand list
// longer than one command's arity expands into repeated instances of the
// same command; a remainder that is not a full tuple is dropped.
//
// If any fragment was dropped, the outline is returned together with a
// non-fatal *SkipError carrying the drop count.
func Parse(d string) (Outline, error) {
	var (
		out        Outline
		skipped    int
		cur, start Point
	)
	s := scanner{src: d}
	for !s.done() {
		c := s.src[s.i]
		switch {
		case isPathSpace(c):
			s.i++
		case isNumberStart(c):
			// Operands with no preceding command letter bind to nothing.
			s.numberToken()
			skipped++
		default:
			s.i++
			op, rel, ok := opForLetter(c)
			if !ok {
				skipped++
				continue
			}
			nums, bad := s.numbers()
			skipped += bad
			skipped += emit(&out, op, rel, nums, &cur, &start)
		}
	}
	if skipped > 0 {
		Logger().Warn("glyphtrace: dropped malformed path fragments",
			"count", skipped, "commands", len(out))
		return out, &SkipError{Count: skipped}
	}
	return out, nil
}

// MustParse parses a path string and panics on a *SkipError. Intended for
// tests and hand-written path literals.
func MustParse(d string) Outline {
	out, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return out
}

// opForLetter decodes a command letter. rel reports whether the letter was
// lowercase (relative coordinates); ok is false for non-command bytes.
func opForLetter(c byte) (op Op, rel, ok bool) {
	if c >= 'a' && c <= 'z' {
		rel = true
		c -= 'a' - 'A'
	}
	switch c {
	case 'M':
		op = MoveTo
	case 'L':
		op = LineTo
	case 'H':
		op = HLineTo
	case 'V':
		op = VLineTo
	case 'C':
		op = CubicTo
	case 'S':
		op = SmoothCubicTo
	case 'Q':
		op = QuadTo
	case 'T':
		op = SmoothQuadTo
	case 'A':
		op = ArcTo
	case 'Z':
		op = ClosePath
	default:
		return 0, false, false
	}
	return op, rel, true
}

// emit expands a command letter's flat operand list into command instances,
// resolving relative coordinates against the current point. It returns the
// number of remainder operands dropped.
func emit(out *Outline, op Op, rel bool, nums []float64, cur, start *Point) int {
	if op == ClosePath {
		*out = append(*out, Command{Op: ClosePath})
		*cur = *start
		return len(nums)
	}

	ar := op.Arity()
	n := len(nums) / ar
	if n == 0 {
		// Letter retained even without a full operand tuple.
		*out = append(*out, Command{Op: op})
		return len(nums)
	}

	for k := 0; k < n; k++ {
		tuple := nums[k*ar : (k+1)*ar]
		args := make([]float64, ar)
		switch op {
		case MoveTo, LineTo, SmoothQuadTo:
			p := Pt(tuple[0], tuple[1])
			if rel {
				p = cur.Add(p)
			}
			args[0], args[1] = p.X, p.Y
			*cur = p
			if op == MoveTo {
				*start = p
			}
		case HLineTo:
			x := tuple[0]
			if rel {
				x += cur.X
			}
			args[0] = x
			cur.X = x
		case VLineTo:
			y := tuple[0]
			if rel {
				y += cur.Y
			}
			args[0] = y
			cur.Y = y
		case QuadTo, SmoothCubicTo, CubicTo:
			for j := 0; j < ar; j += 2 {
				p := Pt(tuple[j], tuple[j+1])
				if rel {
					p = cur.Add(p)
				}
				args[j], args[j+1] = p.X, p.Y
			}
			*cur = Pt(args[ar-2], args[ar-1])
		case ArcTo:
			// Radii, rotation and flags are not coordinates; only the
			// endpoint resolves against the current point.
			copy(args, tuple[:5])
			p := Pt(tuple[5], tuple[6])
			if rel {
				p = cur.Add(p)
			}
			args[5], args[6] = p.X, p.Y
			*cur = p
		}
		*out = append(*out, Command{Op: op, Args: args})
	}
	return len(nums) - n*ar
}

// scanner is a byte-level cursor over a path string.
type scanner struct {
	src string
	i   int
}

func (s *scanner) done() bool { return s.i >= len(s.src) }

// numbers scans the flat operand list following a command letter, stopping
// at the next command letter or end of input. It returns the parsed values
// and the count of malformed substrings dropped.
func (s *scanner) numbers() ([]float64, int) {
	var vals []float64
	bad := 0
	for {
		for !s.done() && isPathSpace(s.src[s.i]) {
			s.i++
		}
		if s.done() || !isNumberStart(s.src[s.i]) {
			return vals, bad
		}
		tok := s.numberToken()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			bad++
			continue
		}
		vals = append(vals, v)
	}
}

// numberToken consumes one numeric token. A second decimal point ends the
// token, so "1.5.5" scans as 1.5 followed by .5; some real-world paths rely
// on that form.
func (s *scanner) numberToken() string {
	start := s.i
	gotDot, gotExp := false, false
	if c := s.src[s.i]; c == '-' || c == '+' {
		s.i++
	}
	for !s.done() {
		switch c := s.src[s.i]; {
		case c >= '0' && c <= '9':
			s.i++
		case c == '.':
			if gotDot || gotExp {
				return s.src[start:s.i]
			}
			gotDot = true
			s.i++
		case (c == 'e' || c == 'E') && !gotExp:
			gotExp = true
			s.i++
			if !s.done() && (s.src[s.i] == '-' || s.src[s.i] == '+') {
				s.i++
			}
		default:
			return s.src[start:s.i]
		}
	}
	return s.src[start:s.i]
}

// isPathSpace reports whether c separates tokens in the path grammar.
func isPathSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

// isNumberStart reports whether c can begin a numeric token.
func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}
