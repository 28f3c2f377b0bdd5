package glyphtrace

import (
	"errors"
	"fmt"
)

// Sentinel errors for the geometry core.
var (
	// ErrEmptyOutline is returned when bounds are requested for an outline
	// with no coordinate-bearing commands.
	ErrEmptyOutline = errors.New("glyphtrace: outline has no coordinate-bearing commands")

	// ErrDegenerateBounds is returned when a fit cannot be computed because
	// the bounds have zero width or height.
	ErrDegenerateBounds = errors.New("glyphtrace: bounds have zero width or height")
)

// SkipError reports how many malformed fragments were dropped while parsing
// a path string or decoding stroke data. It is non-fatal: the result
// returned alongside it is valid and contains everything that could be
// recovered. Callers that only care about the partial result may ignore it;
// callers that need to assert clean input can check with errors.As.
type SkipError struct {
	// Count is the number of fragments (tokens, operands, or point entries)
	// that were dropped.
	Count int
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("glyphtrace: dropped %d malformed fragments", e.Count)
}
