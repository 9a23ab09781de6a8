package anim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Frame is the animated transform of one visual node
type Frame struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// Motion tweens every Frame property from one value to another over the same
// duration and curve, after an optional start delay.
type Motion struct {
	delay    float64
	duration float64
	elapsed  float64 // active time, excluding delay
	over     float64 // time past the end on the finishing update

	x, y, scale, opacity *gween.Tween

	from, cur Frame
	done      bool
}

// NewMotion creates a motion that starts at from
func NewMotion(from, to Frame, duration float64, fn ease.TweenFunc) *Motion {
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(duration)
	return &Motion{
		duration: duration,
		x:        gween.New(float32(from.X), float32(to.X), d, fn),
		y:        gween.New(float32(from.Y), float32(to.Y), d, fn),
		scale:    gween.New(float32(from.Scale), float32(to.Scale), d, fn),
		opacity:  gween.New(float32(from.Opacity), float32(to.Opacity), d, fn),
		from:     from,
		cur:      from,
	}
}

// WithDelay holds the motion at its start frame for d seconds
func (m *Motion) WithDelay(d float64) *Motion {
	if d > 0 {
		m.delay = d
	}
	return m
}

// Update advances the motion by dt seconds and returns the new frame and
// whether the motion has reached its end.
func (m *Motion) Update(dt float64) (Frame, bool) {
	if m.done {
		return m.cur, true
	}
	if m.delay > 0 {
		if dt <= m.delay {
			m.delay -= dt
			return m.cur, false
		}
		dt -= m.delay
		m.delay = 0
	}

	m.elapsed += dt
	step := float32(dt)
	x, _ := m.x.Update(step)
	y, _ := m.y.Update(step)
	s, _ := m.scale.Update(step)
	o, finished := m.opacity.Update(step)

	m.cur = Frame{X: float64(x), Y: float64(y), Scale: float64(s), Opacity: float64(o)}
	m.done = finished
	if finished {
		m.over = math.Max(0, m.elapsed-m.duration)
	}
	return m.cur, finished
}

// Reset rewinds the motion to its start frame. The start delay is not restored.
func (m *Motion) Reset() {
	m.x.Reset()
	m.y.Reset()
	m.scale.Reset()
	m.opacity.Reset()
	m.cur = m.from
	m.done = false
	m.elapsed, m.over = 0, 0
}

// Restart rewinds the motion and advances it by the time that ran past the
// end of the previous play, so back-to-back plays keep their period.
func (m *Motion) Restart() Frame {
	over := m.over
	if m.duration > 0 && over >= m.duration {
		over = math.Mod(over, m.duration)
	}
	m.Reset()
	if over > 0 {
		m.Update(over)
	}
	return m.cur
}

// Current returns the last computed frame
func (m *Motion) Current() Frame { return m.cur }

// Done reports whether the motion has finished
func (m *Motion) Done() bool { return m.done }
