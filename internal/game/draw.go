package game

import (
	"math"

	"circle/internal/scoring"
)

// indicatorAfter is the number of samples that must precede the latest one
// before the guide radius indicator is drawn.
const indicatorAfter = 5

// Draw renders the board onto s.
func (g *Game) Draw(s Surface) {
	s.Clear()
	if g.opts.ShowGuide {
		g.drawGuide(s)
	}
	if g.scored {
		g.drawResult(s)
		return
	}
	if g.drawing && g.opts.ShowGuide {
		g.drawIndicator(s)
	}
	g.drawLive(s)
}

func (g *Game) drawGuide(s Surface) {
	s.DrawArc(g.guide.Center, g.guide.Radius, 0, 2*math.Pi, guideColor, overlayWidth, guideDash)
}

// drawIndicator draws a dashed line from the guide center to the latest
// sample, colored by how far the sample is from the guide radius.
func (g *Game) drawIndicator(s Surface) {
	if g.stroke.Len()-1 <= indicatorAfter {
		return
	}
	last, _ := g.stroke.Last()
	dev := scoring.GuideDeviation(last.Dist(g.guide.Center), g.guide.Radius)
	s.DrawSegment(g.guide.Center, last, scoring.BandFor(dev).Color(), overlayWidth, indicatorDash)
}

func (g *Game) drawLive(s Surface) {
	points := g.stroke.Points()
	for i := 1; i < len(points); i++ {
		band := scoring.BandFor(g.stroke.EstimateSegment(i))
		s.DrawSegment(points[i-1], points[i], band.Color(), strokeWidth, nil)
	}
}

func (g *Game) drawResult(s Surface) {
	band := scoring.BandForScore(g.result.Score)
	points := g.stroke.Points()
	for i := 1; i < len(points); i++ {
		s.DrawSegment(points[i-1], points[i], band.Color(), strokeWidth, nil)
	}
	if g.result.Degenerate {
		return
	}

	c, r := g.result.Center, g.result.AvgRadius
	s.DrawArc(c, r, 0, 2*math.Pi, band.Overlay(), overlayWidth, guideDash)

	s.DrawSegment(scoring.Point{X: c.X - crossSize, Y: c.Y}, scoring.Point{X: c.X + crossSize, Y: c.Y}, guideColor, overlayWidth, nil)
	s.DrawSegment(scoring.Point{X: c.X, Y: c.Y - crossSize}, scoring.Point{X: c.X, Y: c.Y + crossSize}, guideColor, overlayWidth, nil)

	if a := g.sweep.Angle(); a > 0 {
		s.DrawArc(c, r, 0, a, band.Overlay(), overlayWidth, guideDash)
	}
}
