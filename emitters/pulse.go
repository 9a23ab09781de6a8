package emitters

import (
	"image/color"
	"math"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/surface"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EagleVisionPulse reuses a single centered element that grows and fades,
// restarting immediately, until stopped or its repeat count runs out.
type EagleVisionPulse struct {
	cfg  config.PulseConfig
	rt   *Runtime
	ease ease.TweenFunc
	tint color.RGBA
}

// NewEagleVisionPulse creates a pulse emitter
func NewEagleVisionPulse(cfg config.PulseConfig, rt *Runtime) *EagleVisionPulse {
	return &EagleVisionPulse{
		cfg:  cfg,
		rt:   rt,
		ease: anim.Ease(cfg.Ease),
		tint: parseTint(cfg.Color, config.Gold),
	}
}

func (ep *EagleVisionPulse) Name() string { return "eagle-vision" }

// Start attaches the pulse element and schedules its loop
func (ep *EagleVisionPulse) Start(s *surface.Surface) *Handle {
	h := newHandle(ep.rt, ep.Name(), s)
	if !h.live {
		return h
	}
	e := archetypes.EagleEye.Spawn(s)
	if e == nil {
		h.live = false
		return h
	}

	w, ht := s.Size()
	from := anim.Frame{X: w / 2, Y: ht / 2, Scale: ep.cfg.FromScale, Opacity: ep.cfg.FromOpacity}
	to := anim.Frame{X: w / 2, Y: ht / 2, Scale: ep.cfg.ToScale, Opacity: ep.cfg.ToOpacity}
	spawnMotion(e, components.ParticleData{
		Frame:    from,
		Duration: ep.cfg.Duration,
		Radius:   math.Max(w, ht) / 2,
		Tint:     ep.tint,
	}, anim.NewMotion(from, to, ep.cfg.Duration, ep.ease))
	components.Pulse.SetValue(e, components.PulseData{Repeat: ep.cfg.Repeat})
	h.own(e)
	id := e.Entity()

	running := true
	h.schedule(func(dt float64) bool {
		h.advance(dt, func(donburi.Entity) {
			node := s.Entry(id)
			if node == nil {
				running = false
				return
			}
			pd := components.Pulse.Get(node)
			if pd.Repeat >= 0 && pd.Iteration >= pd.Repeat {
				running = false
				return
			}
			pd.Iteration++
			components.Particle.Get(node).Frame = components.Motion.Get(node).Restart()
		})
		return running && h.Len() > 0
	})
	return h
}

// Stop detaches the pulse element
func (ep *EagleVisionPulse) Stop(h *Handle) { h.Stop() }
