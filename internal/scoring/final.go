package scoring

import "math"

// MinScorePoints is the minimum stroke length that produces a score.
const MinScorePoints = 20

// Component weights. These are tuned by hand; closure is on [0,1] while the
// other two components are on a 0..100 scale.
const (
	circularityWeight = 0.6
	closureWeight     = 20
	smoothnessWeight  = 0.2
)

// Result is the outcome of scoring a finished stroke.
type Result struct {
	Score int

	Center    Point
	AvgRadius float64

	Circularity float64 // 100·(1 - 2·mean normalized deviation), may be negative
	Closure     float64 // [0,1]
	Smoothness  float64 // [0,100]

	// Degenerate is set when every sample sits on the centroid or a sample
	// is not finite. Score is 0.
	Degenerate bool
}

// Finalize scores a finished stroke. ok is false when the stroke has fewer
// than MinScorePoints samples, in which case no score is produced.
func Finalize(points []Point) (res Result, ok bool) {
	if len(points) < MinScorePoints {
		return Result{}, false
	}

	center := Centroid(points)
	radii := Radii(points, center)
	avg := mean(radii)

	// Non-finite samples leave nothing to measure.
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return Result{Degenerate: true}, true
	}

	res.Center = center
	res.AvgRadius = avg
	res.Smoothness = Smoothness(points)

	if avg == 0 {
		res.Degenerate = true
		return res, true
	}

	res.Circularity = Circularity(radii, avg)
	res.Closure = Closure(points[0], points[len(points)-1], avg)

	combined := res.Circularity*circularityWeight +
		res.Closure*closureWeight +
		res.Smoothness*smoothnessWeight
	res.Score = int(clamp(roundHalfUp(combined), 0, 100))
	return res, true
}

// Circularity returns 100·(1 - 2·nv) where nv is the mean of |r - avg|/avg.
// avg must be non-zero.
func Circularity(radii []float64, avg float64) float64 {
	if len(radii) == 0 {
		return 0
	}
	var sum float64
	for _, r := range radii {
		sum += math.Abs(r-avg) / avg
	}
	nv := sum / float64(len(radii))
	return 100 * (1 - 2*nv)
}

// Closure returns max(0, 1 - |end-start|/avgRadius).
func Closure(start, end Point, avgRadius float64) float64 {
	if avgRadius <= 0 {
		return 0
	}
	return math.Max(0, 1-start.Dist(end)/avgRadius)
}

// Smoothness averages 1 - turn/π over every consecutive triple and scales the
// result to 0..100. A straight path scores 100, reversing at every sample
// scores 0. Paths with fewer than three points score 100.
func Smoothness(points []Point) float64 {
	if len(points) < 3 {
		return 100
	}
	var sum float64
	for i := 2; i < len(points); i++ {
		p1, p2, p3 := points[i-2], points[i-1], points[i]
		a1 := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
		a2 := math.Atan2(p3.Y-p2.Y, p3.X-p2.X)
		sum += 1 - turn(a1, a2)/math.Pi
	}
	return sum / float64(len(points)-2) * 100
}

// turn is the absolute difference of two headings folded into [0, π].
func turn(a1, a2 float64) float64 {
	d := math.Abs(a2 - a1)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
