package scroll

import "math"

// snapEpsilon is the distance at which the smoother jumps to its target
const snapEpsilon = 1e-4

// Smoother lets applied progress trail the scroll position by a fixed lag,
// the way a scrubbed timeline catches up after a fast scroll.
type Smoother struct {
	lag     float64
	target  float64
	current float64
}

// NewSmoother creates a smoother with lag seconds of catch-up. A lag of
// zero or less applies targets immediately.
func NewSmoother(lag float64) *Smoother {
	if math.IsNaN(lag) || lag < 0 {
		lag = 0
	}
	return &Smoother{lag: lag}
}

// SetTarget sets the progress to approach
func (s *Smoother) SetTarget(p float64) {
	s.target = p
	if s.lag == 0 {
		s.current = p
	}
}

// Jump sets target and current together
func (s *Smoother) Jump(p float64) {
	s.target, s.current = p, p
}

// Step advances toward the target and returns the new value
func (s *Smoother) Step(dt float64) float64 {
	if s.lag == 0 || dt <= 0 {
		if s.lag == 0 {
			s.current = s.target
		}
		return s.current
	}
	k := dt / s.lag
	if k > 1 {
		k = 1
	}
	s.current += (s.target - s.current) * k
	if math.Abs(s.target-s.current) < snapEpsilon {
		s.current = s.target
	}
	return s.current
}

// Value returns the current smoothed progress
func (s *Smoother) Value() float64 { return s.current }

// Target returns the progress being approached
func (s *Smoother) Target() float64 { return s.target }

// Settled reports whether the smoother has reached its target
func (s *Smoother) Settled() bool { return s.current == s.target }
