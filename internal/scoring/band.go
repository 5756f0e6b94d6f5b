package scoring

import (
	"image/color"
	"math"
)

// Band is a feedback color category.
type Band int

const (
	BandBad Band = iota
	BandWarn
	BandGood
)

const (
	goodThreshold = 90
	warnThreshold = 70

	// MaxGuideDeviation is the distance (px) from the guide radius at which
	// the deviation indicator saturates to BandBad.
	MaxGuideDeviation = 20.0
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandWarn:
		return "warn"
	default:
		return "bad"
	}
}

// Color returns the stroke color of the band.
func (b Band) Color() color.RGBA {
	switch b {
	case BandGood:
		return color.RGBA{R: 74, G: 222, B: 128, A: 255}
	case BandWarn:
		return color.RGBA{R: 250, G: 204, B: 21, A: 255}
	default:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255}
	}
}

// Overlay returns the band color at 30% opacity.
func (b Band) Overlay() color.Color {
	c := b.Color()
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 77}
}

// BandFor maps a live estimate in [0,1] to a band.
func BandFor(score float64) Band {
	return bandForPercent(score * 100)
}

// BandForScore maps a final score in [0,100] to a band.
func BandForScore(score int) Band {
	return bandForPercent(float64(score))
}

func bandForPercent(pct float64) Band {
	switch {
	case pct >= goodThreshold:
		return BandGood
	case pct >= warnThreshold:
		return BandWarn
	default:
		return BandBad
	}
}

// GuideDeviation scores how close current is to the guide radius: 1 on the
// guide, 0 at MaxGuideDeviation or further.
func GuideDeviation(current, guide float64) float64 {
	diff := math.Min(math.Abs(current-guide), MaxGuideDeviation)
	return 1 - diff/MaxGuideDeviation
}
