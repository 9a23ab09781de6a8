// Package scroll turns raw scroll offsets into pinned-section progress.
package scroll

import "math"

// DefaultVirtualDistance is the pinned scroll length in viewport heights
const DefaultVirtualDistance = 2.0

// Bounds is the pinned section's box in document coordinates. While the
// section is pinned its viewport-relative top stays at zero, so the document
// offset is the stable value to measure from.
type Bounds struct {
	Top    float64
	Height float64
}

// Viewport is the visible window size in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Progress returns how far offset has advanced through the pin range that
// starts when the section top reaches the viewport top and lasts
// factor*viewportHeight pixels. The result is clamped to [0,1].
func Progress(offset float64, bounds Bounds, viewportHeight, factor float64) float64 {
	distance := factor * viewportHeight
	if distance <= 0 || math.IsNaN(distance) || math.IsNaN(offset) {
		if offset >= bounds.Top {
			return 1
		}
		return 0
	}
	p := (offset - bounds.Top) / distance
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return p
}

// Tracker recomputes progress on every scroll or resize signal. Its only
// state is the last computed value.
type Tracker struct {
	factor float64
	last   float64
}

// NewTracker creates a tracker with the given virtual distance factor.
// Non-positive factors use DefaultVirtualDistance.
func NewTracker(factor float64) *Tracker {
	if factor <= 0 || math.IsNaN(factor) {
		factor = DefaultVirtualDistance
	}
	return &Tracker{factor: factor}
}

// Update recomputes progress for a signal and remembers it
func (t *Tracker) Update(sig Signal) float64 {
	t.last = Progress(sig.Offset, sig.Bounds, sig.Viewport.Height, t.factor)
	return t.last
}

// Last returns the most recently computed progress
func (t *Tracker) Last() float64 { return t.last }

// Factor returns the virtual distance factor
func (t *Tracker) Factor() float64 { return t.factor }

// Distance returns the pin length in pixels for a viewport height
func (t *Tracker) Distance(viewportHeight float64) float64 {
	return t.factor * viewportHeight
}
