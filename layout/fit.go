package layout

import (
	"fmt"
	"math"
)

// FitTitle picks the largest size in the descending sequence
// startSize, startSize-step, ... at which text measures no wider than
// maxWidth. It stops at minSize even when the text still overflows;
// no truncation is attempted beyond that.
func FitTitle(m Measurer, text string, font Font, maxWidth, startSize, minSize, step float64) float64 {
	size := startSize
	for size > minSize && m.TextWidth(text, font, size) > maxWidth {
		size -= step
	}
	return size
}

// FitImage scales an intrinsic image size to the largest draw size
// that respects both maxima while preserving the aspect ratio. A
// non-positive intrinsic dimension is an error the caller must treat
// as "skip this image".
func FitImage(intrinsicW, intrinsicH, maxW, maxH float64) (drawW, drawH float64, err error) {
	if intrinsicW <= 0 || intrinsicH <= 0 {
		return 0, 0, fmt.Errorf("layout: invalid intrinsic image size %gx%g", intrinsicW, intrinsicH)
	}
	scale := math.Min(maxW/intrinsicW, maxH/intrinsicH)
	return intrinsicW * scale, intrinsicH * scale, nil
}
