package scoring

// Live estimate tuning.
const (
	// MinEstimatePoints is the prefix length below which the live estimate
	// is optimistic.
	MinEstimatePoints = 3
	// centroidAfter is the prefix length that must be exceeded before the
	// live centroid is fixed.
	centroidAfter = 5
	// MaxVariance is the radius variance (px²) at which the live estimate
	// reaches 0.
	MaxVariance = 2000.0
)

// Stroke accumulates the samples of one drag gesture together with the
// centroid cached by the live estimator.
//
// The centroid is fixed the first time an estimate sees a prefix longer than
// five points and reused until Reset, so Estimate is not referentially
// transparent within a stroke. Replaying the same calls in the same order
// yields the same values.
type Stroke struct {
	points []Point
	center *Point
	ended  bool
}

// NewStroke returns an empty stroke.
func NewStroke() *Stroke {
	return &Stroke{}
}

// Reset discards all points and derived state.
func (s *Stroke) Reset() {
	s.points = nil
	s.center = nil
	s.ended = false
}

// Append adds a sample. Samples after End are ignored.
func (s *Stroke) Append(p Point) {
	if s.ended {
		return
	}
	s.points = append(s.points, p)
}

// End freezes the stroke.
func (s *Stroke) End() {
	s.ended = true
}

// Ended reports whether End has been called since the last Reset.
func (s *Stroke) Ended() bool {
	return s.ended
}

// Len returns the number of samples.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Points returns the samples. The slice must not be modified.
func (s *Stroke) Points() []Point {
	return s.points
}

// Last returns the most recent sample.
func (s *Stroke) Last() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// CachedCenter returns the centroid fixed by the live estimator, if any.
func (s *Stroke) CachedCenter() (Point, bool) {
	if s.center == nil {
		return Point{}, false
	}
	return *s.center, true
}

// Estimate returns a value in [0,1] describing how consistent candidate is
// with a circular arc through prefix, using the stroke's cached centroid.
func (s *Stroke) Estimate(prefix []Point, candidate Point) float64 {
	if len(prefix) < MinEstimatePoints {
		return 1
	}
	if s.center == nil && len(prefix) > centroidAfter {
		c := Centroid(prefix)
		s.center = &c
	}
	if s.center == nil {
		return 1
	}

	radii := make([]float64, 0, len(prefix)+1)
	for _, p := range prefix {
		radii = append(radii, p.Dist(*s.center))
	}
	radii = append(radii, candidate.Dist(*s.center))

	v := variance(radii, mean(radii))
	return clamp(1-v/MaxVariance, 0, 1)
}

// EstimateNext estimates candidate against every point drawn so far.
func (s *Stroke) EstimateNext(candidate Point) float64 {
	return s.Estimate(s.points, candidate)
}

// EstimateSegment estimates the segment ending at point i, i.e. point i
// against the points before it.
func (s *Stroke) EstimateSegment(i int) float64 {
	if i <= 0 || i >= len(s.points) {
		return 1
	}
	return s.Estimate(s.points[:i], s.points[i])
}
