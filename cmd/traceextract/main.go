// Command traceextract extracts a character's outline from a font file or
// URL and prints it in the path mini-language, flipped into the Y-down
// convention that display viewports use. With -view it additionally fits
// the outline into a square viewport of that size.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/glyphtrace/glyphtrace"
	"github.com/glyphtrace/glyphtrace/glyph"
)

func main() {
	var (
		fontArg = flag.String("font", "", "font file path or http(s) URL")
		charArg = flag.String("char", "", "character to extract")
		backend = flag.String("backend", "ximage", "font backend (ximage or gotext)")
		view    = flag.Float64("view", 0, "fit into a square viewport of this size (0 = native units)")
		output  = flag.String("output", "", "output file (default stdout)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *fontArg == "" || *charArg == "" {
		flag.Usage()
		os.Exit(2)
	}

	r := []rune(*charArg)[0]
	data, err := loadFont(*fontArg)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	src, err := glyph.NewSource(data, glyph.WithBackend(*backend))
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	log.Printf("Font %q, %c (%s), em %.0f", src.Family(), r, runenames.Name(r), src.Em())

	out, err := src.Extract(r)
	if err != nil {
		log.Fatalf("Failed to extract outline: %v", err)
	}
	if len(out) == 0 {
		log.Fatalf("Glyph for %c has an empty outline", r)
	}

	// Font outlines are Y-up; viewports are Y-down.
	flipped := out.FlipY(src.Em())

	if *view > 0 {
		b, err := flipped.Bounds()
		if err != nil {
			log.Fatalf("Failed to compute bounds: %v", err)
		}
		f, err := glyphtrace.NewFit(b, *view)
		if err != nil {
			log.Fatalf("Failed to compute fit: %v", err)
		}
		log.Printf("Bounds left=%.1f top=%.1f width=%.1f height=%.1f, scale=%.4f",
			b.Left, b.Top, b.Width, b.Height, f.Scale)
		flipped = flipped.Transform(f)
	}

	path := flipped.String()
	if *output == "" {
		fmt.Println(path)
		return
	}
	if err := os.WriteFile(*output, []byte(path+"\n"), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Path written to %s (%d commands)", *output, len(flipped))
}

// loadFont reads font bytes from a local path or downloads them over HTTP.
func loadFont(arg string) ([]byte, error) {
	if !strings.HasPrefix(arg, "http://") && !strings.HasPrefix(arg, "https://") {
		return os.ReadFile(arg)
	}
	resp, err := http.Get(arg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %s: %s", arg, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
