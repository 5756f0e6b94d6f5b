// Package game drives one draw-a-circle session: it turns pointer events into
// strokes, scores finished strokes and draws the board onto a Surface.
//
// A Game is not safe for concurrent use. All events are expected to arrive
// from a single UI loop.
package game

import (
	"math"

	"circle/internal/scoring"
)

// EventKind tags a pointer sample.
type EventKind int

const (
	EventStart EventKind = iota
	EventMove
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventMove:
		return "move"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Event is a pointer sample in surface coordinates. Point is ignored for
// EventEnd.
type Event struct {
	Kind  EventKind
	Point scoring.Point
}

// Outcome reports what an event changed.
type Outcome struct {
	Scored  bool
	Result  scoring.Result
	Best    int
	NewBest bool
}

// Options toggles optional behavior.
type Options struct {
	ShowGuide bool
	Animate   bool
}

// DefaultOptions shows the guide and animates the completion sweep.
func DefaultOptions() Options {
	return Options{ShowGuide: true, Animate: true}
}

// Guide is the dashed reference circle.
type Guide struct {
	Center scoring.Point
	Radius float64
}

// GuideFor returns the guide for a surface of the given size.
func GuideFor(width, height float64) Guide {
	return Guide{
		Center: scoring.Point{X: width / 2, Y: height / 2},
		Radius: math.Min(width, height) / 4,
	}
}

// Game is the controller for one session.
type Game struct {
	width, height float64
	opts          Options
	guide         Guide

	stroke  *scoring.Stroke
	drawing bool
	live    float64

	result  scoring.Result
	scored  bool
	session Session
	sweep   *Sweep
}

// New returns a game for a surface of the given pixel size.
func New(width, height float64, opts Options) *Game {
	return &Game{
		width:  width,
		height: height,
		opts:   opts,
		guide:  GuideFor(width, height),
		stroke: scoring.NewStroke(),
		live:   1,
	}
}

// Resize changes the surface size. The current stroke is kept.
func (g *Game) Resize(width, height float64) {
	g.width, g.height = width, height
	g.guide = GuideFor(width, height)
}

// Size returns the surface size in pixels.
func (g *Game) Size() (width, height float64) { return g.width, g.height }

// Contains reports whether p lies on the surface.
func (g *Game) Contains(p scoring.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Guide returns the reference circle.
func (g *Game) Guide() Guide { return g.guide }

// Options returns the current options.
func (g *Game) Options() Options { return g.opts }

// ToggleGuide shows or hides the guide circle.
func (g *Game) ToggleGuide() bool {
	g.opts.ShowGuide = !g.opts.ShowGuide
	return g.opts.ShowGuide
}

// Stroke returns the current stroke. Callers must not modify it.
func (g *Game) Stroke() *scoring.Stroke { return g.stroke }

// Drawing reports whether a stroke is in progress.
func (g *Game) Drawing() bool { return g.drawing }

// Live returns the estimate for the most recent sample.
func (g *Game) Live() float64 { return g.live }

// Result returns the result of the last scored stroke, if it is still on
// the board.
func (g *Game) Result() (scoring.Result, bool) { return g.result, g.scored }

// Session returns the session scores.
func (g *Game) Session() *Session { return &g.session }

// Sweep returns the completion sweep, or nil.
func (g *Game) Sweep() *Sweep { return g.sweep }

// Handle applies one pointer event.
func (g *Game) Handle(ev Event) Outcome {
	switch ev.Kind {
	case EventStart:
		g.start(ev.Point)
	case EventMove:
		g.move(ev.Point)
	case EventEnd:
		return g.end()
	}
	return Outcome{}
}

func (g *Game) start(p scoring.Point) {
	g.sweep.Cancel()
	g.sweep = nil
	g.stroke.Reset()
	g.stroke.Append(p)
	g.drawing = true
	g.scored = false
	g.live = 1
	Logger().Debug("stroke started", "x", p.X, "y", p.Y)
}

func (g *Game) move(p scoring.Point) {
	if !g.drawing {
		return
	}
	// Estimate before appending so the cached centroid is fixed from the
	// points that preceded the sample.
	g.live = g.stroke.EstimateNext(p)
	g.stroke.Append(p)
}

func (g *Game) end() Outcome {
	if !g.drawing {
		return Outcome{}
	}
	g.drawing = false
	g.stroke.End()

	res, ok := scoring.Finalize(g.stroke.Points())
	if !ok {
		Logger().Debug("stroke too short to score", "points", g.stroke.Len(), "min", scoring.MinScorePoints)
		return Outcome{}
	}

	prevBest, hadBest := g.session.Best()
	best := g.session.Record(res.Score)
	g.result, g.scored = res, true
	if g.opts.Animate && !res.Degenerate {
		g.sweep = NewSweep()
	}

	newBest := !hadBest || best > prevBest
	Logger().Info("stroke scored",
		"score", res.Score,
		"best", best,
		"points", g.stroke.Len(),
		"circularity", res.Circularity,
		"closure", res.Closure,
		"smoothness", res.Smoothness,
		"degenerate", res.Degenerate,
	)
	return Outcome{Scored: true, Result: res, Best: best, NewBest: newBest}
}

// Tick advances the completion sweep by one frame and reports whether more
// frames remain.
func (g *Game) Tick() bool {
	if _, ok := g.sweep.Next(); !ok {
		return false
	}
	return g.sweep.Active()
}

// Replay feeds points to g as one stroke and ends it.
func Replay(g *Game, points []scoring.Point) Outcome {
	for i, p := range points {
		kind := EventMove
		if i == 0 {
			kind = EventStart
		}
		g.Handle(Event{Kind: kind, Point: p})
	}
	return g.Handle(Event{Kind: EventEnd})
}
