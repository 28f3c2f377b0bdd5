// Command traceview renders a letter outline and its guide strokes into a
// PNG so alignment can be checked by eye. The outline is fitted into the
// viewport with the same transform the points were authored against.
package main

import (
	"errors"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/glyphtrace/glyphtrace"
	"github.com/glyphtrace/glyphtrace/visual"
)

func main() {
	var (
		points  = flag.String("points", "", "stroke points JSON file (optional)")
		path    = flag.String("path", "", "letter outline path string")
		view    = flag.Int("view", 300, "viewport size in pixels")
		output  = flag.String("output", "overlay.png", "output PNG file")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	outline, err := glyphtrace.Parse(*path)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	b, err := outline.Bounds()
	if err != nil {
		log.Fatalf("Failed to compute outline bounds: %v", err)
	}
	fit, err := glyphtrace.NewFit(b, float64(*view))
	if err != nil {
		log.Fatalf("Failed to compute fit: %v", err)
	}

	var drawing glyphtrace.Drawing
	if *points != "" {
		data, err := os.ReadFile(*points)
		if err != nil {
			log.Fatalf("Failed to read points file: %v", err)
		}
		drawing, err = glyphtrace.DecodeDrawing(data)
		if err != nil {
			var se *glyphtrace.SkipError
			if !errors.As(err, &se) {
				log.Fatalf("Failed to decode points: %v", err)
			}
			log.Printf("Warning: skipped %d malformed point entries", se.Count)
		}
	}

	img := visual.Overlay(outline.Transform(fit), drawing, *view)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Overlay saved to %s (%dx%d, %d strokes)", *output, *view, *view, len(drawing.Strokes))
}
