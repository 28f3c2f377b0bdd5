package glyphtrace

import (
	"math"
	"testing"
)

func TestOutline_FlipY(t *testing.T) {
	tests := []struct {
		name string
		path string
		axis float64
		want string
	}{
		{
			name: "triangle",
			path: "M 0 0 L 100 0 L 100 100 Z",
			axis: 100,
			want: "M 0 100 L 100 100 L 100 0 Z",
		},
		{
			name: "horizontal passes through",
			path: "M 0 50 H 80",
			axis: 100,
			want: "M 0 50 H 80",
		},
		{
			name: "vertical flips its scalar",
			path: "M 0 0 V 30",
			axis: 100,
			want: "M 0 100 V 70",
		},
		{
			name: "curves flip every pair",
			path: "M 0 0 Q 50 0 100 100 C 1 2 3 4 5 6",
			axis: 100,
			want: "M 0 100 Q 50 100 100 0 C 1 98 3 96 5 94",
		},
		{
			name: "arc flips endpoint and complements sweep",
			path: "M 0 0 A 25 30 15 1 1 50 50",
			axis: 100,
			want: "M 0 100 A 25 30 15 1 0 50 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.path).FlipY(tt.axis).String()
			if got != tt.want {
				t.Errorf("FlipY(%v) = %q, want %q", tt.axis, got, tt.want)
			}
		})
	}
}

func TestOutline_FlipY_Involution(t *testing.T) {
	paths := []string{
		"M 0 0 L 100 0 L 100 100 Z",
		"M 10 20 H 50 V 60 Q 70 80 90 100 T 110 120",
		"M 0 0 C 10 20 30 40 50 60 S 70 80 90 100",
		"M 0 0 A 25 25 0 0 1 50 50",
	}
	for _, path := range paths {
		orig := MustParse(path)
		twice := orig.FlipY(128).FlipY(128)
		if got, want := twice.String(), orig.String(); got != want {
			t.Errorf("double flip of %q = %q, want %q", path, got, want)
		}
	}
}

func TestOutline_Transform(t *testing.T) {
	f := Fit{Scale: 1.5, TranslateX: 75, TranslateY: 0}

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "move and line",
			path: "M 0 0 L 100 200 Z",
			want: "M 75 0 L 225 300 Z",
		},
		{
			name: "horizontal stays horizontal",
			path: "M 0 0 H 100",
			want: "M 75 0 H 225",
		},
		{
			name: "vertical stays vertical",
			path: "M 0 0 V 100",
			want: "M 75 0 V 150",
		},
		{
			name: "arc scales radii and maps endpoint",
			path: "M 0 0 A 20 30 45 1 0 100 200",
			want: "M 75 0 A 30 45 45 1 0 225 300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.path).Transform(f).String()
			if got != tt.want {
				t.Errorf("Transform = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutline_Transform_FullPipeline(t *testing.T) {
	// Fit an off-origin outline into a 300-square viewport and verify the
	// transformed outline's own bounds land there.
	out := MustParse("M 390 212 L 890 212 L 890 1012 L 390 1012 Z")
	b, err := out.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFit(b, 300)
	if err != nil {
		t.Fatal(err)
	}

	fitted, err := out.Transform(f).Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if fitted.Top < -epsilon || fitted.Bottom() > 300+epsilon ||
		fitted.Left < -epsilon || fitted.Right() > 300+epsilon {
		t.Errorf("fitted bounds outside viewport: %+v", fitted)
	}
	if math.Abs(fitted.Height-300) >= epsilon {
		t.Errorf("fitted height = %v, want 300", fitted.Height)
	}
	wantLeft := (300 - fitted.Width) / 2
	if math.Abs(fitted.Left-wantLeft) >= epsilon {
		t.Errorf("fitted left = %v, want %v", fitted.Left, wantLeft)
	}
}

func TestOutline_Transform_DoesNotMutate(t *testing.T) {
	orig := MustParse("M 1 2 L 3 4")
	want := orig.String()
	orig.Transform(Fit{Scale: 2, TranslateX: 10, TranslateY: 20})
	orig.FlipY(100)
	if got := orig.String(); got != want {
		t.Errorf("source outline changed: %q, want %q", got, want)
	}
}
