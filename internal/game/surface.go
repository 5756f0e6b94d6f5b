package game

import (
	"image/color"

	"circle/internal/scoring"
)

// Surface is a 2D stroke canvas. Widths and dash lengths are in pixels; a nil
// dash draws a solid line. Angles are in radians, clockwise from +X in screen
// coordinates.
type Surface interface {
	Clear()
	DrawSegment(p1, p2 scoring.Point, c color.Color, width float64, dash []float64)
	DrawArc(center scoring.Point, radius, start, end float64, c color.Color, width float64, dash []float64)
}

// Stroke widths and dash patterns used when drawing.
const (
	strokeWidth  = 3.0
	overlayWidth = 2.0
	crossSize    = 5.0
)

var (
	guideDash     = []float64{5, 5}
	indicatorDash = []float64{2, 2}

	guideColor = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
)
