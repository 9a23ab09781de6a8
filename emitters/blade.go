package emitters

import (
	"image/color"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/reveal"
	"github.com/automoto/scrollfx/surface"
	"github.com/tanema/gween/ease"
)

// Blade throws short-lived sparks off the heading while the blade passes.
// It spawns only when told to by Emit.
type Blade struct {
	cfg  config.BladeConfig
	rt   *Runtime
	ease ease.TweenFunc
	tint color.RGBA
}

// NewBlade creates a blade emitter
func NewBlade(cfg config.BladeConfig, rt *Runtime) *Blade {
	return &Blade{cfg: cfg, rt: rt, ease: anim.Ease(cfg.Ease), tint: parseTint(cfg.Color, config.Gold)}
}

func (b *Blade) Name() string { return "blade" }

// Start prepares a run on s, normally the page-level root. Nothing is spawned
// until Emit is called.
func (b *Blade) Start(s *surface.Surface) *Handle {
	h := newHandle(b.rt, b.Name(), s)
	if !h.live {
		return h
	}
	h.schedule(func(dt float64) bool {
		h.advance(dt, h.release)
		return true
	})
	return h
}

// Stop ends the run and detaches all sparks
func (b *Blade) Stop(h *Handle) { h.Stop() }

// Emit spawns one spark inside anchor if phase is slice-in or slice-out. It
// reports whether a spark was created.
func (b *Blade) Emit(h *Handle, phase reveal.Phase, anchor components.Rect) bool {
	if !h.Active() || !phase.Slicing() || anchor.Empty() || !h.surface.Mounted() {
		return false
	}
	if b.cfg.MaxActive > 0 && h.Len() >= b.cfg.MaxActive {
		return false
	}

	rt := b.rt
	x := anchor.X + rt.Rand.Float64()*anchor.W
	y := anchor.Y + rt.Rand.Float64()*anchor.H
	scale := rt.between(b.cfg.MinScale, b.cfg.MaxScale)
	duration := rt.between(b.cfg.MinDuration, b.cfg.MaxDuration)
	toX := x + (rt.Rand.Float64()-0.5)*b.cfg.DriftX
	toY := y - rt.between(b.cfg.RiseMin, b.cfg.RiseMax)

	e := archetypes.BladeParticle.Spawn(h.surface)
	if e == nil {
		return false
	}
	from := anim.Frame{X: x, Y: y, Scale: scale, Opacity: 1}
	to := anim.Frame{X: toX, Y: toY, Scale: 0, Opacity: 0}
	spawnMotion(e, components.ParticleData{
		Frame:    from,
		Duration: duration,
		Radius:   b.cfg.Radius,
		Tint:     b.tint,
		HasDrift: true,
		DriftX:   toX,
		DriftY:   toY,
	}, anim.NewMotion(from, to, duration, b.ease))
	h.own(e)
	return true
}

var _ Emitter = (*Blade)(nil)
