package glyphtrace

import "testing"

func TestQuadBez_Sample(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 0), P2: Pt(100, 100)}
	pts := q.Sample(4)

	if len(pts) != 5 {
		t.Fatalf("Sample(4) = %d points, want 5", len(pts))
	}
	if pts[0] != q.P0 {
		t.Errorf("first sample = %v, want exactly P0", pts[0])
	}
	if pts[4] != q.P2 {
		t.Errorf("last sample = %v, want exactly P2", pts[4])
	}
	// Midpoint of the Bernstein form: 0.25*P0 + 0.5*P1 + 0.25*P2.
	if !pointsEqual(pts[2], Pt(50, 25), epsilon) {
		t.Errorf("midpoint sample = %v, want (50, 25)", pts[2])
	}
}

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(10, 20), P2: Pt(20, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(10, 10)},
		{1, Pt(20, 0)},
	}
	for _, tt := range tests {
		if got := q.Eval(tt.t); !pointsEqual(got, tt.want, epsilon) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestCubicBez_Sample(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	pts := c.Sample(10)

	if len(pts) != 11 {
		t.Fatalf("Sample(10) = %d points, want 11", len(pts))
	}
	if pts[0] != c.P0 || pts[10] != c.P3 {
		t.Errorf("endpoints = %v, %v, want exactly P0 and P3", pts[0], pts[10])
	}
	// Symmetric control polygon peaks at t=0.5 with y = 75.
	if !pointsEqual(pts[5], Pt(50, 75), epsilon) {
		t.Errorf("midpoint sample = %v, want (50, 75)", pts[5])
	}
}

func TestSample_ClampsLowCount(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 0)}
	if got := len(q.Sample(0)); got != 2 {
		t.Errorf("Sample(0) = %d points, want 2", got)
	}
}

func TestReflect(t *testing.T) {
	got := reflect(Pt(10, 10), Pt(4, 7))
	if !pointsEqual(got, Pt(16, 13), epsilon) {
		t.Errorf("reflect = %v, want (16, 13)", got)
	}
}
