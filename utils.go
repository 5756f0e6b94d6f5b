package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) scoreLines() []string {
	var lines []string
	if res, ok := m.game.Result(); ok {
		lines = append(lines, fmt.Sprintf("Score: %d%%", res.Score))
	} else if last, ok := m.game.Session().Last(); ok {
		lines = append(lines, fmt.Sprintf("Score: %d%%", last))
	}
	if best, ok := m.game.Session().Best(); ok {
		lines = append(lines, fmt.Sprintf("Best: %d%%", best))
	}
	return lines
}

func (m *model) scoreSummary() (string, error) {
	res, ok := m.game.Result()
	if !ok {
		return "", fmt.Errorf("no score yet")
	}
	summary := fmt.Sprintf("I drew a %d%% circle", res.Score)
	if best, ok := m.game.Session().Best(); ok && best > res.Score {
		summary += fmt.Sprintf(" (best %d%%)", best)
	}
	return summary, nil
}

func (m *model) copyScore() error {
	summary, err := m.scoreSummary()
	if err != nil {
		return err
	}
	return clipboard.WriteAll(summary)
}

func withExtension(filename, ext string) string {
	if strings.HasSuffix(strings.ToLower(filename), ext) {
		return filename
	}
	return filename + ext
}

func fileOpExtension(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return ".png"
	default:
		return ".txt"
	}
}

func fileOpName(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return "Export PNG"
	case FileOpSaveVisualTXT:
		return "Export TXT"
	default:
		return "Save stroke"
	}
}

func fileOpDefault(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return "circle"
	case FileOpSaveVisualTXT:
		return "circle-board"
	default:
		return "stroke"
	}
}

func absOrSame(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
