package glyphtrace

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Stroke is one continuous pen movement: an ordered sequence of guide
// points. Points are normally stored normalized to [0,1] in display space,
// but the codec enforces no clamping in either direction so projected
// coordinates round-trip unchanged.
type Stroke []Point

// Drawing is an ordered sequence of strokes for one traced shape. Stroke
// order and point order within a stroke are both significant: guide
// animation replays them in order.
type Drawing struct {
	Strokes []Stroke
}

// strokeRecord is the stored form of one stroke: a list of "x,y" entries.
type strokeRecord struct {
	Points []string `json:"points"`
}

// drawingRecord is the stored form of a drawing.
type drawingRecord struct {
	Strokes []strokeRecord `json:"strokes"`
}

// DecodeDrawing parses stroke data from its JSON storage form. The canonical
// form is a record with a "strokes" array of {"points": ["x,y", ...]}
// objects; a legacy bare array of point lists decodes equivalently.
//
// Malformed point entries are skipped without discarding the rest of their
// stroke; if any were skipped, the drawing is returned together with a
// non-fatal *SkipError. Coordinates are not clamped to [0,1].
func DecodeDrawing(data []byte) (Drawing, error) {
	var rec drawingRecord
	if err := json.Unmarshal(data, &rec); err == nil && rec.Strokes != nil {
		return decodeStrokes(rec.Strokes)
	}

	var bare [][]string
	if err := json.Unmarshal(data, &bare); err != nil {
		return Drawing{}, err
	}
	recs := make([]strokeRecord, len(bare))
	for i, pts := range bare {
		recs[i].Points = pts
	}
	return decodeStrokes(recs)
}

func decodeStrokes(recs []strokeRecord) (Drawing, error) {
	d := Drawing{Strokes: make([]Stroke, 0, len(recs))}
	skipped := 0
	for _, rec := range recs {
		stroke := make(Stroke, 0, len(rec.Points))
		for _, entry := range rec.Points {
			p, ok := parsePointEntry(entry)
			if !ok {
				skipped++
				continue
			}
			stroke = append(stroke, p)
		}
		d.Strokes = append(d.Strokes, stroke)
	}
	if skipped > 0 {
		Logger().Warn("glyphtrace: dropped malformed point entries",
			"count", skipped, "strokes", len(d.Strokes))
		return d, &SkipError{Count: skipped}
	}
	return d, nil
}

// parsePointEntry parses one "x,y" entry.
func parsePointEntry(s string) (Point, bool) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, false
	}
	return Pt(x, y), true
}

// Encode renders the drawing in the canonical record form. Coordinates use
// the shortest exact decimal representation and are not clamped, so a
// decode of the output reproduces the drawing bit for bit.
func (d Drawing) Encode() ([]byte, error) {
	rec := drawingRecord{Strokes: make([]strokeRecord, len(d.Strokes))}
	for i, stroke := range d.Strokes {
		pts := make([]string, len(stroke))
		for j, p := range stroke {
			pts[j] = strconv.FormatFloat(p.X, 'f', -1, 64) + "," +
				strconv.FormatFloat(p.Y, 'f', -1, 64)
		}
		rec.Strokes[i].Points = pts
	}
	return json.Marshal(rec)
}

// ToOutlineSpace projects a drawing of normalized display-space points into
// the outline's native space: each point is scaled up by the display size
// and then mapped through the fit's inverse.
//
// The fit must be the same one later used to render the outline, or the
// projected points land visibly off the shape.
func (d Drawing) ToOutlineSpace(f Fit, displaySize float64) Drawing {
	return d.mapPoints(func(p Point) Point {
		return f.Invert(p.Mul(displaySize))
	})
}

// ToDisplaySpace projects a drawing of native-space points into normalized
// display space, the forward counterpart of ToOutlineSpace.
func (d Drawing) ToDisplaySpace(f Fit, displaySize float64) Drawing {
	return d.mapPoints(func(p Point) Point {
		return f.Apply(p).Mul(1 / displaySize)
	})
}

// mapPoints returns a new drawing with fn applied to every point.
func (d Drawing) mapPoints(fn func(Point) Point) Drawing {
	out := Drawing{Strokes: make([]Stroke, len(d.Strokes))}
	for i, stroke := range d.Strokes {
		s := make(Stroke, len(stroke))
		for j, p := range stroke {
			s[j] = fn(p)
		}
		out.Strokes[i] = s
	}
	return out
}
