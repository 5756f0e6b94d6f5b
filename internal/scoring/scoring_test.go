package scoring

import (
	"math"
	"testing"
)

func circlePoints(cx, cy, r float64, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return points
}

func linePoints(n int, step float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(i) * step}
	}
	return points
}

func TestCentroid(t *testing.T) {
	c := Centroid([]Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}})
	if c != (Point{2, 1}) {
		t.Fatalf("centroid = %v, want {2 1}", c)
	}
	if got := Centroid(nil); got != (Point{}) {
		t.Fatalf("centroid of nothing = %v, want zero", got)
	}
}

func TestEstimateOptimisticBelowThreePoints(t *testing.T) {
	s := NewStroke()
	far := Point{X: 1e6, Y: -1e6}
	for n := 0; n < 3; n++ {
		if got := s.Estimate(linePoints(n, 10), far); got != 1 {
			t.Errorf("estimate with %d points = %v, want 1", n, got)
		}
	}
}

func TestEstimateWaitsForCentroid(t *testing.T) {
	s := NewStroke()
	prefix := linePoints(5, 10)
	if got := s.Estimate(prefix, Point{X: 500, Y: 500}); got != 1 {
		t.Fatalf("estimate before centroid = %v, want 1", got)
	}
	if _, ok := s.CachedCenter(); ok {
		t.Fatal("centroid cached with only 5 points")
	}
}

func TestEstimateOnCircle(t *testing.T) {
	s := NewStroke()
	prefix := circlePoints(200, 200, 100, 8)

	got := s.Estimate(prefix, Point{X: 200, Y: 100})
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("estimate on circle = %v, want 1", got)
	}
	c, ok := s.CachedCenter()
	if !ok {
		t.Fatal("centroid not cached after 8 points")
	}
	if math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-200) > 1e-9 {
		t.Fatalf("cached centroid = %v, want {200 200}", c)
	}

	if got := s.Estimate(prefix, Point{X: 500, Y: 200}); got != 0 {
		t.Fatalf("estimate far off circle = %v, want 0", got)
	}
}

func TestEstimateKeepsCachedCentroid(t *testing.T) {
	s := NewStroke()
	s.Estimate(circlePoints(200, 200, 100, 8), Point{X: 300, Y: 200})

	// A prefix centered elsewhere must still be measured from the cached center.
	shifted := circlePoints(0, 0, 100, 8)
	if got := s.Estimate(shifted, Point{X: 100}); got == 1 {
		t.Fatal("estimate recomputed centroid instead of using the cached one")
	}
	if c, _ := s.CachedCenter(); math.Abs(c.X-200) > 1e-9 {
		t.Fatalf("cached centroid moved to %v", c)
	}

	s.Reset()
	if _, ok := s.CachedCenter(); ok {
		t.Fatal("Reset kept the cached centroid")
	}
	if s.Len() != 0 {
		t.Fatalf("Reset kept %d points", s.Len())
	}
}

func TestEstimateReplayIsDeterministic(t *testing.T) {
	points := circlePoints(150, 150, 60, 30)
	points[12].X += 25

	run := func() []float64 {
		s := NewStroke()
		var out []float64
		for _, p := range points {
			out = append(out, s.EstimateNext(p))
			s.Append(p)
		}
		for i := 1; i < s.Len(); i++ {
			out = append(out, s.EstimateSegment(i))
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverged at %d: %v != %v", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] > 1 {
			t.Fatalf("estimate %d out of range: %v", i, a[i])
		}
	}
}

func TestStrokeFrozenAfterEnd(t *testing.T) {
	s := NewStroke()
	s.Append(Point{1, 1})
	s.End()
	s.Append(Point{2, 2})
	if s.Len() != 1 {
		t.Fatalf("len after end = %d, want 1", s.Len())
	}
	if !s.Ended() {
		t.Fatal("Ended() = false after End")
	}
	s.Reset()
	s.Append(Point{3, 3})
	if s.Len() != 1 || s.Ended() {
		t.Fatalf("stroke not reusable after Reset: len=%d ended=%v", s.Len(), s.Ended())
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{1, BandGood},
		{0.95, BandGood},
		{0.8, BandWarn},
		{0.75, BandWarn},
		{0.5, BandBad},
		{0, BandBad},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}

	scores := map[int]Band{100: BandGood, 90: BandGood, 89: BandWarn, 70: BandWarn, 69: BandBad, 0: BandBad}
	for score, want := range scores {
		if got := BandForScore(score); got != want {
			t.Errorf("BandForScore(%d) = %v, want %v", score, got, want)
		}
	}
}

func TestGuideDeviation(t *testing.T) {
	tests := []struct {
		current, guide, want float64
	}{
		{100, 100, 1},
		{110, 100, 0.5},
		{90, 100, 0.5},
		{120, 100, 0},
		{300, 100, 0},
	}
	for _, tt := range tests {
		if got := GuideDeviation(tt.current, tt.guide); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GuideDeviation(%v, %v) = %v, want %v", tt.current, tt.guide, got, tt.want)
		}
	}
}

func TestFinalizeNeedsTwentyPoints(t *testing.T) {
	if _, ok := Finalize(circlePoints(0, 0, 50, MinScorePoints-1)); ok {
		t.Fatal("scored a stroke with 19 points")
	}
	if _, ok := Finalize(circlePoints(0, 0, 50, MinScorePoints)); !ok {
		t.Fatal("did not score a stroke with 20 points")
	}
}

func TestFinalizePerfectCircle(t *testing.T) {
	for _, n := range []int{64, 200} {
		res, ok := Finalize(circlePoints(200, 200, 100, n))
		if !ok {
			t.Fatalf("n=%d: no score", n)
		}
		if res.Score < 95 {
			t.Errorf("n=%d: score = %d, want >= 95 (%+v)", n, res.Score, res)
		}
		if math.Abs(res.AvgRadius-100) > 1e-6 {
			t.Errorf("n=%d: avg radius = %v, want 100", n, res.AvgRadius)
		}
	}
}

func TestFinalizeClosedCircle(t *testing.T) {
	points := circlePoints(0, 0, 80, 60)
	points = append(points, points[0])
	res, _ := Finalize(points)
	if res.Closure != 1 {
		t.Fatalf("closure = %v, want 1", res.Closure)
	}
	if res.Score < 95 {
		t.Fatalf("score = %d, want >= 95", res.Score)
	}
}

func TestFinalizeStraightLine(t *testing.T) {
	res, ok := Finalize(linePoints(30, 10))
	if !ok {
		t.Fatal("no score for line")
	}
	if res.Circularity > 5 {
		t.Errorf("circularity = %v, want near 0", res.Circularity)
	}
	if res.Closure != 0 {
		t.Errorf("closure = %v, want 0", res.Closure)
	}
	if res.Smoothness != 100 {
		t.Errorf("smoothness = %v, want 100", res.Smoothness)
	}
	if res.Score > 25 {
		t.Errorf("score = %d, want low", res.Score)
	}
}

func TestFinalizeDegenerate(t *testing.T) {
	points := make([]Point, 25)
	for i := range points {
		points[i] = Point{X: 5, Y: 5}
	}
	res, ok := Finalize(points)
	if !ok {
		t.Fatal("degenerate stroke not scored")
	}
	if !res.Degenerate || res.Score != 0 {
		t.Fatalf("got %+v, want degenerate score 0", res)
	}
	if math.IsNaN(res.Circularity) || math.IsNaN(res.Closure) {
		t.Fatalf("NaN component in %+v", res)
	}
}

func TestFinalizeNonFinite(t *testing.T) {
	withNaN := circlePoints(200, 200, 100, 30)
	withNaN[7] = Point{X: math.NaN(), Y: 1}

	allInf := make([]Point, 25)
	for i := range allInf {
		allInf[i] = Point{X: math.Inf(1)}
	}

	for name, points := range map[string][]Point{"nan": withNaN, "inf": allInf} {
		res, ok := Finalize(points)
		if !ok {
			t.Fatalf("%s: no result", name)
		}
		if !res.Degenerate || res.Score != 0 {
			t.Fatalf("%s: got %+v, want degenerate score 0", name, res)
		}
	}
}

func TestFinalizeAlwaysInRange(t *testing.T) {
	zigzag := make([]Point, 40)
	for i := range zigzag {
		zigzag[i] = Point{X: float64(i % 2 * 300), Y: float64(i * 3)}
	}
	spiral := make([]Point, 80)
	for i := range spiral {
		theta := float64(i) * 0.3
		spiral[i] = Point{X: theta * 10 * math.Cos(theta), Y: theta * 10 * math.Sin(theta)}
	}
	for name, points := range map[string][]Point{"zigzag": zigzag, "spiral": spiral} {
		res, ok := Finalize(points)
		if !ok {
			t.Fatalf("%s: no score", name)
		}
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("%s: score %d out of range", name, res.Score)
		}
	}
}

func TestSmoothness(t *testing.T) {
	if got := Smoothness(linePoints(10, 5)); got != 100 {
		t.Errorf("straight path smoothness = %v, want 100", got)
	}

	reversing := make([]Point, 20)
	for i := range reversing {
		reversing[i] = Point{X: float64(i % 2)}
	}
	if got := Smoothness(reversing); math.Abs(got) > 1e-9 {
		t.Errorf("reversing path smoothness = %v, want 0", got)
	}

	// Right-angle turns score halfway.
	square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	if got := Smoothness(square); math.Abs(got-50) > 1e-9 {
		t.Errorf("square smoothness = %v, want 50", got)
	}
}

func TestSmoothnessWrapsHeading(t *testing.T) {
	// Headings just either side of ±π differ by a small turn, not ~2π.
	got := Smoothness([]Point{{10, 0.1}, {0, 0}, {-10, 0.1}})
	if got < 99 {
		t.Fatalf("smoothness across the ±π seam = %v, want ~100", got)
	}
}

func TestClosure(t *testing.T) {
	start := Point{X: 10, Y: 10}
	if got := Closure(start, start, 50); got != 1 {
		t.Errorf("coincident endpoints closure = %v, want 1", got)
	}
	if got := Closure(start, Point{X: 60, Y: 10}, 50); got != 0 {
		t.Errorf("endpoints r̄ apart closure = %v, want 0", got)
	}
	if got := Closure(start, Point{X: 35, Y: 10}, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("half-radius gap closure = %v, want 0.5", got)
	}
	if got := Closure(start, Point{X: 500, Y: 10}, 50); got != 0 {
		t.Errorf("wide gap closure = %v, want 0", got)
	}
}
