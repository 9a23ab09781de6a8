// Package reveal computes the heading reveal timeline.
//
// The timeline has five phases laid end to end over progress 0..1. Every
// visual attribute is a pure function of progress, so scrubbing backwards
// replays the same states in reverse and any phase can be tested on its own.
package reveal

import (
	"image/color"
	"math"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/config"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// State is the complete visual state of the heading at one progress value
type State struct {
	Phase    Phase
	Progress float64 // overall 0..1
	Local    float64 // 0..1 within Phase

	Clip       Clip
	Color      color.RGBA
	Glow       float64     // intensity 0..1
	GlowRadius float64     // pixels
	GlowColor  color.NRGBA // accent at the current glow alpha
}

// Visible returns the visible horizontal span of the heading as fractions
// of its width.
func (st State) Visible() (lo, hi float64) {
	lo, hi = st.Clip.Span()
	return lo / 100, hi / 100
}

// PhaseListener is told about every phase boundary crossed, one step at a time
type PhaseListener func(from, to Phase)

// Sequencer maps progress to heading state
type Sequencer struct {
	bounds [NumPhases + 1]float64

	sliceIn   ease.TweenFunc
	sliceOut  ease.TweenFunc
	highlight ease.TweenFunc

	base, accent colorful.Color
	glowRadius   float64
	glowAlpha    float64

	phase     Phase
	state     State
	listeners []PhaseListener
}

// New creates a sequencer from configuration. Invalid weights fall back to
// equal phase lengths and unparsable colors to the page palette.
func New(cfg config.RevealConfig) *Sequencer {
	s := &Sequencer{
		sliceIn:    anim.Ease(cfg.SliceInEase),
		sliceOut:   anim.Ease(cfg.SliceOutEase),
		highlight:  anim.Ease(cfg.HighlightEase),
		base:       parseColor(cfg.BaseColor, config.Royal),
		accent:     parseColor(cfg.AccentColor, config.Gold),
		glowRadius: cfg.GlowRadius,
		glowAlpha:  cfg.GlowAlpha,
	}
	s.bounds = phaseBounds(cfg.Weights)
	s.state = s.Evaluate(0)
	return s
}

func parseColor(hex string, fallback color.RGBA) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, _ := colorful.MakeColor(fallback)
	return c
}

// phaseBounds turns weights into cumulative boundaries 0 = b[0] <= ... <= b[5] = 1
func phaseBounds(weights []float64) [NumPhases + 1]float64 {
	var b [NumPhases + 1]float64
	total := 0.0
	valid := len(weights) == NumPhases
	if valid {
		for _, w := range weights {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				valid = false
				break
			}
			total += w
		}
	}
	if !valid || total <= 0 {
		for i := range b {
			b[i] = float64(i) / NumPhases
		}
		return b
	}

	acc := 0.0
	for i, w := range weights {
		acc += w
		b[i+1] = acc / total
	}
	b[NumPhases] = 1
	return b
}

// Range returns the progress sub-range [start, end) of ph
func (s *Sequencer) Range(ph Phase) (start, end float64) {
	if ph < PhaseIdle || ph > PhaseSettle {
		return 0, 0
	}
	return s.bounds[ph], s.bounds[ph+1]
}

// PhaseAt returns the phase that owns progress p
func (s *Sequencer) PhaseAt(p float64) Phase {
	p = clamp01(p)
	for i := 0; i < NumPhases; i++ {
		if p < s.bounds[i+1] {
			return Phase(i)
		}
	}
	return PhaseSettle
}

// Evaluate computes the state at p without touching the current phase
func (s *Sequencer) Evaluate(p float64) State {
	p = clamp01(p)
	ph := s.PhaseAt(p)
	start, end := s.Range(ph)
	local := 0.0
	if end > start {
		local = (p - start) / (end - start)
	}

	st := State{
		Phase:    ph,
		Progress: p,
		Local:    local,
		Clip:     ClipFull,
	}

	switch ph {
	case PhaseIdle:
		st.Clip = ClipFull
	case PhaseSliceIn:
		st.Clip = ClipFull.Lerp(ClipClosed, anim.Unit(s.sliceIn, local))
	case PhaseSliceOut:
		st.Clip = ClipClosed.Lerp(ClipOpened, anim.Unit(s.sliceOut, local))
	default:
		st.Clip = ClipOpened
	}

	glow := 0.0
	switch ph {
	case PhaseHighlight:
		glow = anim.Unit(s.highlight, local)
	case PhaseSettle:
		glow = 1
	}
	st.Color = toRGBA(s.base.BlendRgb(s.accent, glow))
	st.Glow = glow
	st.GlowRadius = s.glowRadius * glow
	st.GlowColor = toNRGBA(s.accent, s.glowAlpha*glow)
	return st
}

// ApplyProgress recomputes the whole state for p, records it as current and
// notifies phase listeners of each boundary crossed since the last call.
func (s *Sequencer) ApplyProgress(p float64) State {
	st := s.Evaluate(p)
	s.walkTo(st.Phase)
	s.state = st
	return st
}

func (s *Sequencer) walkTo(target Phase) {
	for s.phase != target {
		from := s.phase
		if target > s.phase {
			s.phase++
		} else {
			s.phase--
		}
		for _, fn := range s.listeners {
			fn(from, s.phase)
		}
	}
}

// OnPhase registers a listener for phase changes
func (s *Sequencer) OnPhase(fn PhaseListener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Phase returns the phase of the last applied progress
func (s *Sequencer) Phase() Phase { return s.phase }

// State returns the last applied state
func (s *Sequencer) State() State { return s.state }

// Reset returns the sequencer to idle at progress 0 without notifying listeners
func (s *Sequencer) Reset() {
	s.phase = PhaseIdle
	s.state = s.Evaluate(0)
}

func clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p) || p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return p
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}
