// Command tracedots converts hand-authored stroke points into a tracing
// guide path aligned with a letter outline. Stroke points are stored
// normalized for a square viewport; the outline path is in its own native
// space. The tool computes the outline's fit once and projects the points
// through its inverse, so guide and letter land in the same place when
// rendered with that same fit.
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
		lines   = flag.Bool("lines", false, "join points with straight lines instead of curves")
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
	log.Printf("Bounds left=%.1f top=%.1f width=%.1f height=%.1f", b.Left, b.Top, b.Width, b.Height)
	log.Printf("Fit scale=%.4f translate=(%.2f, %.2f)", fit.Scale, fit.TranslateX, fit.TranslateY)

	guide := drawing.ToOutlineSpace(fit, *view).GuidePath(!*lines)
	fmt.Println(guide.String())
}
