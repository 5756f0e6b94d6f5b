package game

import (
	"iter"
	"math"
)

// SweepStep is the angle advanced per frame by the completion sweep.
const SweepStep = 0.1

// Sweep is the cosmetic arc animation drawn after a score. It yields angles
// 0, 0.1, 0.2, ... while the angle is at most 2π, then stops. It has no
// effect on scoring.
type Sweep struct {
	next      float64
	angle     float64
	cancelled bool
}

// NewSweep returns a sweep positioned before its first angle.
func NewSweep() *Sweep {
	return &Sweep{}
}

// Next advances the sweep and returns the new angle. ok is false once the
// sweep has finished or was cancelled.
func (s *Sweep) Next() (angle float64, ok bool) {
	if s == nil || s.cancelled || s.next > 2*math.Pi {
		return 0, false
	}
	s.angle = s.next
	s.next += SweepStep
	return s.angle, true
}

// Angle returns the most recent angle, or 0 before the first frame.
func (s *Sweep) Angle() float64 {
	if s == nil {
		return 0
	}
	return s.angle
}

// Active reports whether the sweep has frames left.
func (s *Sweep) Active() bool {
	return s != nil && !s.cancelled && s.next <= 2*math.Pi
}

// Cancel stops the sweep.
func (s *Sweep) Cancel() {
	if s != nil {
		s.cancelled = true
	}
}

// Angles returns the remaining angles as a sequence.
func (s *Sweep) Angles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			a, ok := s.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}
