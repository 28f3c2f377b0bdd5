package glyphtrace

import (
	"math"
	"strconv"
	"strings"
)

// String renders the outline in the path mini-language: uppercase command
// letters and operands separated by single spaces.
//
// Operands render as bare integers when integral, otherwise rounded to one
// decimal place. One decimal is plenty at viewport resolution and keeps the
// strings small enough to embed in asset files. Commands retained without a
// full operand tuple render as their bare letter.
func (o Outline) String() string {
	var b strings.Builder
	for i, c := range o {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c.Op.Letter())
		if !c.complete() {
			continue
		}
		for _, v := range c.Args {
			b.WriteByte(' ')
			b.WriteString(formatCoord(v))
		}
	}
	return b.String()
}

// formatCoord renders one operand: integral values as plain integers,
// everything else with one decimal place.
func formatCoord(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
