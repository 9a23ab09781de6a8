package emitters

import (
	"image/color"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/surface"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Sand keeps a fixed population of grains falling through the section. A
// grain that lands is detached and replaced in the same frame.
type Sand struct {
	cfg  config.SandConfig
	rt   *Runtime
	ease ease.TweenFunc
}

// NewSand creates a sand emitter
func NewSand(cfg config.SandConfig, rt *Runtime) *Sand {
	return &Sand{cfg: cfg, rt: rt, ease: anim.Ease(cfg.Ease)}
}

func (sd *Sand) Name() string { return "sand" }

// Start seeds the full population and schedules the replenish loop
func (sd *Sand) Start(s *surface.Surface) *Handle {
	h := newHandle(sd.rt, sd.Name(), s)
	if !h.live {
		return h
	}
	for i := 0; i < sd.cfg.Count; i++ {
		sd.spawn(h)
	}
	h.schedule(func(dt float64) bool {
		h.advance(dt, func(id donburi.Entity) {
			h.release(id)
			sd.spawn(h)
		})
		return true
	})
	return h
}

// Stop ends the run and detaches every grain
func (sd *Sand) Stop(h *Handle) { h.Stop() }

func (sd *Sand) spawn(h *Handle) {
	if !h.live || h.Len() >= sd.cfg.Count {
		return
	}
	e := archetypes.SandParticle.Spawn(h.surface)
	if e == nil {
		return
	}

	rt := sd.rt
	w, ht := h.surface.Size()
	startX := rt.Rand.Float64() * w
	endX := startX + (rt.Rand.Float64()-0.5)*sd.cfg.DriftX
	scale := rt.between(sd.cfg.MinScale, sd.cfg.MaxScale)
	duration := rt.between(sd.cfg.MinDuration, sd.cfg.MaxDuration)

	from := anim.Frame{X: startX, Y: -sd.cfg.Margin, Scale: scale, Opacity: sd.cfg.StartOpacity}
	to := anim.Frame{X: endX, Y: ht + sd.cfg.Margin, Scale: scale, Opacity: 0}
	spawnMotion(e, components.ParticleData{
		Frame:    from,
		Duration: duration,
		Radius:   sd.cfg.Radius,
		Tint:     grainTint(rt.Rand.Float64()),
		HasDrift: true,
		DriftX:   endX,
		DriftY:   to.Y,
	}, anim.NewMotion(from, to, duration, sd.ease))
	h.own(e)
}

// grainTint picks a shade between gold and umber
func grainTint(t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{
		R: lerp(config.Gold.R, config.Umber.R),
		G: lerp(config.Gold.G, config.Umber.G),
		B: lerp(config.Gold.B, config.Umber.B),
		A: 255,
	}
}
