package glyphtrace

import (
	"errors"
	"math"
	"testing"
)

func TestNewFit(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		target float64
		want   Fit
	}{
		{
			name:   "tall box centers horizontally",
			bounds: Bounds{Left: 0, Top: 0, Width: 100, Height: 200},
			target: 300,
			want:   Fit{Scale: 1.5, TranslateX: 75, TranslateY: 0},
		},
		{
			name:   "wide box centers vertically",
			bounds: Bounds{Left: 0, Top: 0, Width: 200, Height: 100},
			target: 300,
			want:   Fit{Scale: 1.5, TranslateX: 0, TranslateY: 75},
		},
		{
			name:   "offset origin is translated out",
			bounds: Bounds{Left: 50, Top: -30, Width: 100, Height: 100},
			target: 100,
			want:   Fit{Scale: 1, TranslateX: -50, TranslateY: 30},
		},
		{
			name:   "square box fills exactly",
			bounds: Bounds{Left: 0, Top: 0, Width: 150, Height: 150},
			target: 300,
			want:   Fit{Scale: 2, TranslateX: 0, TranslateY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFit(tt.bounds, tt.target)
			if err != nil {
				t.Fatalf("NewFit error = %v", err)
			}
			if math.Abs(f.Scale-tt.want.Scale) >= epsilon ||
				math.Abs(f.TranslateX-tt.want.TranslateX) >= epsilon ||
				math.Abs(f.TranslateY-tt.want.TranslateY) >= epsilon {
				t.Errorf("NewFit = %+v, want %+v", f, tt.want)
			}
		})
	}
}

func TestNewFit_Degenerate(t *testing.T) {
	tests := []Bounds{
		{Width: 0, Height: 100},
		{Width: 100, Height: 0},
		{Width: 0, Height: 0},
	}
	for _, b := range tests {
		if _, err := NewFit(b, 300); !errors.Is(err, ErrDegenerateBounds) {
			t.Errorf("NewFit(%+v) error = %v, want ErrDegenerateBounds", b, err)
		}
	}
}

func TestFit_RoundTrip(t *testing.T) {
	f, err := NewFit(Bounds{Left: 390, Top: 212, Width: 517, Height: 801}, 300)
	if err != nil {
		t.Fatal(err)
	}
	points := []Point{
		Pt(0, 0),
		Pt(390, 212),
		Pt(648.5, 612.5),
		Pt(-17.25, 1e6),
	}
	for _, p := range points {
		got := f.Invert(f.Apply(p))
		if math.Abs(got.X-p.X) > 1e-6*math.Max(1, math.Abs(p.X)) ||
			math.Abs(got.Y-p.Y) > 1e-6*math.Max(1, math.Abs(p.Y)) {
			t.Errorf("Invert(Apply(%v)) = %v", p, got)
		}
	}
}

func TestFit_MapsBoundsIntoViewport(t *testing.T) {
	b := Bounds{Left: 120, Top: -40, Width: 300, Height: 500}
	f, err := NewFit(b, 300)
	if err != nil {
		t.Fatal(err)
	}

	min := f.Apply(Pt(b.Left, b.Top))
	max := f.Apply(Pt(b.Right(), b.Bottom()))
	for _, v := range []float64{min.X, min.Y, max.X, max.Y} {
		if v < -epsilon || v > 300+epsilon {
			t.Fatalf("mapped corner outside viewport: min=%v max=%v", min, max)
		}
	}
	// The long axis spans the viewport, the short axis is centered.
	if math.Abs(max.Y-min.Y-300) >= epsilon {
		t.Errorf("height after fit = %v, want 300", max.Y-min.Y)
	}
	if math.Abs(min.X-(300-(max.X-min.X))/2) >= epsilon {
		t.Errorf("short axis not centered: min.X = %v, width = %v", min.X, max.X-min.X)
	}
}

func TestFit_Deterministic(t *testing.T) {
	b := Bounds{Left: 1, Top: 2, Width: 333, Height: 77}
	f1, err1 := NewFit(b, 300)
	f2, err2 := NewFit(b, 300)
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if f1 != f2 {
		t.Errorf("identical inputs produced different fits: %+v vs %+v", f1, f2)
	}
}
