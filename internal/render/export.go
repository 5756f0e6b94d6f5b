package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"circle/internal/game"
	"circle/internal/scoring"
)

const (
	labelSize    = 16.0
	labelPadding = 12.0
)

// Draw renders g onto a new surface and, if label is set, writes the score
// in the top-left corner.
func Draw(g *game.Game, label bool) (*Surface, error) {
	w, h := g.Size()
	s := NewSurface(int(w), int(h))
	g.Draw(s)
	if !label {
		return s, nil
	}
	if err := drawLabel(s.dc, g); err != nil {
		return nil, err
	}
	return s, nil
}

// WritePNG renders g and encodes it to w as PNG.
func WritePNG(w io.Writer, g *game.Game, label bool) error {
	s, err := Draw(g, label)
	if err != nil {
		return err
	}
	return s.dc.EncodePNG(w)
}

// SavePNG renders g into the named PNG file.
func SavePNG(filename string, g *game.Game, label bool) error {
	s, err := Draw(g, label)
	if err != nil {
		return err
	}
	if err := s.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

func drawLabel(dc *gg.Context, g *game.Game) error {
	face, err := labelFace()
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	y := labelPadding + labelSize
	if res, ok := g.Result(); ok {
		dc.SetColor(scoring.BandForScore(res.Score).Color())
		dc.DrawString(fmt.Sprintf("Score: %d%%", res.Score), labelPadding, y)
		y += labelSize * 1.4
	}
	if best, ok := g.Session().Best(); ok {
		dc.SetColor(scoring.BandGood.Color())
		dc.DrawString(fmt.Sprintf("Best: %d%%", best), labelPadding, y)
	}
	return nil
}

func labelFace() (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
