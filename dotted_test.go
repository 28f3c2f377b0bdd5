package glyphtrace

import "testing"

func TestDrawing_GuidePath_Smooth(t *testing.T) {
	d := Drawing{Strokes: []Stroke{
		{Pt(10, 10), Pt(20, 30), Pt(40, 30)},
	}}

	got := d.GuidePath(true).String()
	// First curve uses the previous point as control, later curves the
	// midpoint of the previous and current points.
	want := "M 10 10 Q 10 10 20 30 Q 30 30 40 30"
	if got != want {
		t.Errorf("GuidePath(true) = %q, want %q", got, want)
	}
}

func TestDrawing_GuidePath_Lines(t *testing.T) {
	d := Drawing{Strokes: []Stroke{
		{Pt(10, 10), Pt(20, 30), Pt(40, 30)},
	}}

	got := d.GuidePath(false).String()
	want := "M 10 10 L 20 30 L 40 30"
	if got != want {
		t.Errorf("GuidePath(false) = %q, want %q", got, want)
	}
}

func TestDrawing_GuidePath_SubpathPerStroke(t *testing.T) {
	d := Drawing{Strokes: []Stroke{
		{Pt(0, 0), Pt(10, 0)},
		{},
		{Pt(50, 50)},
	}}

	out := d.GuidePath(true)
	moves := 0
	for _, c := range out {
		if c.Op == MoveTo {
			moves++
		}
	}
	// The empty stroke contributes nothing; the single-point stroke is a
	// bare MoveTo.
	if moves != 2 {
		t.Errorf("subpaths = %d, want 2", moves)
	}
	if got, want := out.String(), "M 0 0 Q 0 0 10 0 M 50 50"; got != want {
		t.Errorf("GuidePath = %q, want %q", got, want)
	}
}

func TestDrawing_GuidePath_Empty(t *testing.T) {
	if out := (Drawing{}).GuidePath(true); len(out) != 0 {
		t.Errorf("GuidePath of empty drawing = %d commands, want 0", len(out))
	}
}

func TestDrawing_GuidePath_ProjectedAlignment(t *testing.T) {
	// Guide points projected into outline space and then fitted back to
	// display space must land where the normalized points said they were.
	f, err := NewFit(Bounds{Left: 390, Top: 212, Width: 517, Height: 801}, 300)
	if err != nil {
		t.Fatal(err)
	}
	d := Drawing{Strokes: []Stroke{{Pt(0.3, 0.4), Pt(0.6, 0.7)}}}

	projected := d.ToOutlineSpace(f, 300)
	for i, stroke := range projected.Strokes {
		for j, p := range stroke {
			back := f.Apply(p)
			want := d.Strokes[i][j].Mul(300)
			if !pointsEqual(back, want, 1e-6) {
				t.Errorf("stroke %d point %d renders at %v, want %v", i, j, back, want)
			}
		}
	}
}
