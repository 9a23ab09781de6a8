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

// HieroglyphBurst scatters a fixed number of symbols once at start. They fade
// in with a stagger, rest at low opacity and are only removed by Stop.
type HieroglyphBurst struct {
	cfg  config.GlyphConfig
	rt   *Runtime
	ease ease.TweenFunc
	tint color.RGBA
}

// NewHieroglyphBurst creates a hieroglyph emitter
func NewHieroglyphBurst(cfg config.GlyphConfig, rt *Runtime) *HieroglyphBurst {
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = config.HieroglyphSymbols
	}
	return &HieroglyphBurst{
		cfg:  cfg,
		rt:   rt,
		ease: anim.Ease(cfg.Ease),
		tint: parseTint(cfg.Color, config.Gold),
	}
}

func (hb *HieroglyphBurst) Name() string { return "hieroglyph" }

// Start creates the whole batch and schedules the fade-in. The loop finishes
// once every symbol has settled.
func (hb *HieroglyphBurst) Start(s *surface.Surface) *Handle {
	h := newHandle(hb.rt, hb.Name(), s)
	if !h.live {
		return h
	}

	rt := hb.rt
	w, ht := s.Size()
	for i := 0; i < hb.cfg.Count; i++ {
		e := archetypes.Hieroglyph.Spawn(s)
		if e == nil {
			break
		}
		x := rt.Rand.Float64() * w
		y := rt.Rand.Float64() * ht
		glyph := hb.cfg.Symbols[rt.Rand.Intn(len(hb.cfg.Symbols))]

		from := anim.Frame{X: x, Y: y, Scale: 0, Opacity: 0}
		to := anim.Frame{X: x, Y: y, Scale: 1, Opacity: hb.cfg.RestOpacity}
		spawnMotion(e, components.ParticleData{
			Frame:    from,
			Duration: hb.cfg.Duration,
			Tint:     hb.tint,
		}, anim.NewMotion(from, to, hb.cfg.Duration, hb.ease).WithDelay(float64(i)*hb.cfg.Stagger))
		components.Symbol.SetValue(e, components.SymbolData{Glyph: glyph})
		h.own(e)
	}

	settled := 0
	h.schedule(func(dt float64) bool {
		h.advance(dt, func(donburi.Entity) { settled++ })
		return settled < h.Len()
	})
	return h
}

// Stop detaches the whole batch
func (hb *HieroglyphBurst) Stop(h *Handle) { h.Stop() }
