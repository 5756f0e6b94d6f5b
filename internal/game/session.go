package game

// Session holds the scores of one play session. The zero value is ready to
// use and has no scores.
type Session struct {
	last, best       int
	hasLast, hasBest bool
	strokes          int
}

// Record stores score as the latest result and returns the best score so
// far.
func (s *Session) Record(score int) int {
	s.last, s.hasLast = score, true
	s.strokes++
	if !s.hasBest || score > s.best {
		s.best, s.hasBest = score, true
	}
	return s.best
}

// Last returns the most recent score.
func (s *Session) Last() (int, bool) { return s.last, s.hasLast }

// Best returns the highest score recorded.
func (s *Session) Best() (int, bool) { return s.best, s.hasBest }

// Strokes returns how many strokes have been scored.
func (s *Session) Strokes() int { return s.strokes }
