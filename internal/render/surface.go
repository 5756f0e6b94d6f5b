// Package render draws games onto raster images with fogleman/gg.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"circle/internal/scoring"
)

// Background is the board color.
var Background = color.RGBA{R: 30, G: 41, B: 59, A: 255}

// Surface is a game.Surface backed by a gg context.
type Surface struct {
	dc         *gg.Context
	background color.Color
}

// NewSurface returns a surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		dc:         gg.NewContext(width, height),
		background: Background,
	}
	s.Clear()
	return s
}

// Context exposes the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Clear() {
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

func (s *Surface) DrawSegment(p1, p2 scoring.Point, c color.Color, width float64, dash []float64) {
	s.pen(c, width, dash)
	s.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	s.dc.Stroke()
}

func (s *Surface) DrawArc(center scoring.Point, radius, start, end float64, c color.Color, width float64, dash []float64) {
	if radius <= 0 {
		return
	}
	s.pen(c, width, dash)
	s.dc.NewSubPath()
	s.dc.DrawArc(center.X, center.Y, radius, start, end)
	s.dc.Stroke()
}

func (s *Surface) pen(c color.Color, width float64, dash []float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCapRound()
	s.dc.SetDash(dash...)
}
