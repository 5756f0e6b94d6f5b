package main

import (
	"fmt"
	"os"

	"circle/internal/render"
	"circle/internal/strokefile"
)

func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if m.canvas == nil {
		return fmt.Errorf("no canvas available")
	}

	// Render the board exactly as it appears, without color
	m.game.Draw(m.canvas)
	for _, line := range m.canvas.PlainLines() {
		fmt.Fprintln(file, line)
	}
	for _, line := range m.scoreLines() {
		fmt.Fprintln(file, line)
	}

	return nil
}

func (m *model) exportPNG(filename string) error {
	return render.SavePNG(filename, m.game, true)
}

func (m *model) saveStroke(filename string) error {
	points := m.game.Stroke().Points()
	if len(points) == 0 {
		return fmt.Errorf("nothing to save")
	}
	return strokefile.Save(filename, points)
}

func (m *model) runFileOp(filename string) error {
	switch m.fileOp {
	case FileOpSaveStroke:
		return m.saveStroke(filename)
	case FileOpSavePNG:
		return m.exportPNG(filename)
	case FileOpSaveVisualTXT:
		return m.exportVisualTXT(filename)
	}
	return fmt.Errorf("unknown file operation %d", m.fileOp)
}
