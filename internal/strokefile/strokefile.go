// Package strokefile reads and writes strokes as plain text, one "x,y" or
// "x y" point per line. Blank lines and lines starting with '#' are ignored.
package strokefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"circle/internal/scoring"
)

// Read parses points from r.
func Read(r io.Reader) ([]scoring.Point, error) {
	var points []scoring.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 coordinates, got %d", lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y: %w", lineNo, err)
		}
		if !finite(x) || !finite(y) {
			return nil, fmt.Errorf("line %d: coordinates must be finite, got %s", lineNo, line)
		}
		points = append(points, scoring.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return points, nil
}

// Load reads points from the named file.
func Load(filename string) ([]scoring.Point, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	points, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return points, nil
}

// Write writes points to w, one per line.
func Write(w io.Writer, points []scoring.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes points to the named file, replacing it.
func Save(filename string, points []scoring.Point) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(file, points); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
