// Package glyphtrace provides the coordinate geometry for letter-tracing
// asset pipelines: parsing vector outline path strings, computing accurate
// bounding boxes (including curved segments), deriving fit-and-center
// transforms into a normalized display square, and keeping hand-authored
// stroke guide points in the same coordinate space as the rendered outline.
//
// # Overview
//
// An outline source (typically a font, see the glyph subpackage) yields a
// path string and a native square reference size ("units per em"). The core
// pipeline is:
//
//	outline, _ := glyphtrace.Parse(pathString)
//	bounds, err := outline.Bounds()
//	fit, err := glyphtrace.NewFit(bounds, 300)
//	display := outline.Transform(fit)
//
// Stroke guide points are stored normalized to [0, 1] in display space.
// They are reconciled with the outline through the same Fit, forward or
// inverse:
//
//	native := drawing.ToOutlineSpace(fit, 300)
//
// The single most important property of the package is that Fit.Apply and
// Fit.Invert are exact inverses: two independently produced coordinate sets
// agree only when both pass through the same fit.
//
// # Error policy
//
// Parsing and stroke decoding never fail on malformed input. Unknown tokens
// and malformed numbers are dropped and the drop count is reported through a
// non-fatal *SkipError alongside the partial result. Structural failures
// (ErrEmptyOutline, ErrDegenerateBounds) are surfaced as typed errors, never
// silently defaulted: a silently wrong fit produces a coordinate
// misalignment that is invisible until rendered.
//
// # Concurrency
//
// All operations are pure functions over immutable inputs. Every transform
// returns a new value; nothing is mutated in place. The package retains no
// cross-call state and may be used from multiple goroutines without
// coordination.
package glyphtrace
