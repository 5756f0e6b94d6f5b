package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"circle/internal/render"
	"circle/internal/scoring"
)

// Canvas is a terminal cell grid that implements game.Surface. Drawing
// happens in pixel coordinates; each cell covers cellWidth×cellHeight pixels.
type Canvas struct {
	cols  int
	rows  int
	cells [][]cell
}

type cell struct {
	ch    rune
	color lipgloss.Color
}

const (
	// Pixels between raster samples along segments and arcs.
	rasterStep = 2.0

	thickRune = '█'
	thinRune  = '·'
)

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([][]cell, rows)
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
	}
	c.Clear()
}

// PixelSize returns the drawing area in pixels.
func (c *Canvas) PixelSize() (float64, float64) {
	return float64(c.cols) * cellWidth, float64(c.rows) * cellHeight
}

// PointAt returns the pixel at the center of a cell.
func (c *Canvas) PointAt(col, row int) scoring.Point {
	return scoring.Point{
		X: (float64(col) + 0.5) * cellWidth,
		Y: (float64(row) + 0.5) * cellHeight,
	}
}

// CellAt returns the cell that contains pixel p.
func (c *Canvas) CellAt(p scoring.Point) (col, row int, ok bool) {
	col = int(math.Floor(p.X / cellWidth))
	row = int(math.Floor(p.Y / cellHeight))
	ok = col >= 0 && row >= 0 && col < c.cols && row < c.rows
	return col, row, ok
}

func (c *Canvas) Clear() {
	for _, line := range c.cells {
		for i := range line {
			line[i] = cell{ch: ' '}
		}
	}
}

func (c *Canvas) DrawSegment(p1, p2 scoring.Point, col color.Color, width float64, dash []float64) {
	ch := glyphFor(width)
	fg := terminalColor(col)

	length := p1.Dist(p2)
	steps := int(math.Ceil(length / rasterStep))
	if steps == 0 {
		c.plot(p1, ch, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !dashOn(t*length, dash) {
			continue
		}
		c.plot(scoring.Point{X: p1.X + t*(p2.X-p1.X), Y: p1.Y + t*(p2.Y-p1.Y)}, ch, fg)
	}
}

func (c *Canvas) DrawArc(center scoring.Point, radius, start, end float64, col color.Color, width float64, dash []float64) {
	if radius <= 0 || end <= start {
		return
	}
	ch := glyphFor(width)
	fg := terminalColor(col)

	sweep := end - start
	steps := int(math.Ceil(radius * sweep / rasterStep))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if !dashOn(t*radius*sweep, dash) {
			continue
		}
		a := start + t*sweep
		c.plot(scoring.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}, ch, fg)
	}
}

func (c *Canvas) plot(p scoring.Point, ch rune, fg lipgloss.Color) {
	col, row, ok := c.CellAt(p)
	if !ok {
		return
	}
	// Thin marks never cover a thick one.
	if ch == thinRune && c.cells[row][col].ch == thickRune {
		return
	}
	c.cells[row][col] = cell{ch: ch, color: fg}
}

// Render returns one styled string per row. Runs of cells with the same
// color share one style.
func (c *Canvas) Render() []string {
	lines := make([]string, c.rows)
	for r, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteRune(cl.ch)
		}
		flush()
		lines[r] = b.String()
	}
	return lines
}

// PlainLines returns the grid without color.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, c.rows)
	for r, row := range c.cells {
		runes := make([]rune, len(row))
		for i, cl := range row {
			runes[i] = cl.ch
		}
		lines[r] = strings.TrimRight(string(runes), " ")
	}
	return lines
}

func glyphFor(width float64) rune {
	if width >= 3 {
		return thickRune
	}
	return thinRune
}

// dashOn reports whether distance d along a path falls on a dash. Patterns
// alternate on and off lengths; an empty pattern is solid.
func dashOn(d float64, dash []float64) bool {
	if len(dash) == 0 {
		return true
	}
	var total float64
	for _, v := range dash {
		total += v
	}
	if total <= 0 {
		return true
	}
	d = math.Mod(d, total)
	for i, v := range dash {
		if d < v {
			return i%2 == 0
		}
		d -= v
	}
	return true
}

// terminalColor flattens c over the board background and returns it as a
// hex color.
func terminalColor(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	bg := render.Background
	a := float64(n.A) / 255
	mix := func(fg, bg uint8) uint8 {
		return uint8(math.Round(float64(fg)*a + float64(bg)*(1-a)))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(n.R, bg.R), mix(n.G, bg.G), mix(n.B, bg.B)))
}
