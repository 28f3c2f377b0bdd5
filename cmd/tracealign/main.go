// Command tracealign reports whether stored stroke points line up with a
// letter outline. It recomputes the outline's bounds and fit, projects each
// stroke's points back into the outline's native space, and prints where
// they land so drift between point data and outline is caught before the
// assets ship.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/glyphtrace/glyphtrace"
)

func main() {
	var (
		points  = flag.String("points", "", "stroke points JSON file")
		path    = flag.String("path", "", "letter outline path string")
		view    = flag.Float64("view", 300, "viewport size the points are normalized for")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *points == "" || *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*points)
	if err != nil {
		log.Fatalf("Failed to read points file: %v", err)
	}
	drawing, err := glyphtrace.DecodeDrawing(data)
	if err != nil {
		var se *glyphtrace.SkipError
		if !errors.As(err, &se) {
			log.Fatalf("Failed to decode points: %v", err)
		}
		log.Printf("Warning: skipped %d malformed point entries", se.Count)
	}

	outline, err := glyphtrace.Parse(*path)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	b, err := outline.Bounds()
	if err != nil {
		log.Fatalf("Failed to compute outline bounds: %v", err)
	}
	fit, err := glyphtrace.NewFit(b, *view)
	if err != nil {
		log.Fatalf("Failed to compute fit: %v", err)
	}

	fmt.Printf("Outline bounds: left=%.1f top=%.1f width=%.1f height=%.1f\n",
		b.Left, b.Top, b.Width, b.Height)
	fmt.Printf("Fit (view %.0f): scale=%.4f translate=(%.2f, %.2f)\n\n",
		*view, fit.Scale, fit.TranslateX, fit.TranslateY)

	projected := drawing.ToOutlineSpace(fit, *view)
	for i, stroke := range projected.Strokes {
		if len(stroke) == 0 {
			fmt.Printf("Stroke %d: no points\n", i+1)
			continue
		}
		fmt.Printf("Stroke %d: %d points\n", i+1, len(stroke))
		first := drawing.Strokes[i][0]
		fmt.Printf("  first point: normalized (%.4f, %.4f) -> outline space (%.2f, %.2f)\n",
			first.X, first.Y, stroke[0].X, stroke[0].Y)
		if in := countInside(stroke, b); in < len(stroke) {
			fmt.Printf("  WARNING: %d of %d points land outside the outline bounds\n",
				len(stroke)-in, len(stroke))
		}
	}
}

// countInside counts the points that fall within the bounding box. Points
// outside it cannot lie on the letter and indicate a stale or wrong fit.
func countInside(stroke glyphtrace.Stroke, b glyphtrace.Bounds) int {
	in := 0
	for _, p := range stroke {
		if p.X >= b.Left && p.X <= b.Right() && p.Y >= b.Top && p.Y <= b.Bottom() {
			in++
		}
	}
	return in
}
