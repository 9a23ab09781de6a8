package emitters

import (
	"testing"

	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
)

func pulseEntry(t *testing.T, h *Handle) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.EagleEye.Each(h.surface.World(), func(e *donburi.Entry) {
		found = e
	})
	if found == nil {
		t.Fatal("no pulse element")
	}
	return found
}

func TestPulseLoopsForever(t *testing.T) {
	rt := newTestRuntime()
	s := newTestSurface()
	ep := NewEagleVisionPulse(testConfig().Pulse, rt)
	h := ep.Start(s)

	id := pulseEntry(t, h).Entity()
	runFor(rt, 11, func() {
		if got := s.Count(tags.EagleEye); got != 1 {
			t.Fatalf("pulse elements = %d, want 1", got)
		}
		e := s.Entry(id)
		if e == nil {
			t.Fatal("pulse element was replaced instead of reused")
		}
		p := components.Particle.Get(e)
		if p.Scale < 1-1e-6 || p.Scale > 1.5+1e-6 {
			t.Fatalf("scale %v outside [1,1.5]", p.Scale)
		}
		if p.Opacity < -1e-6 || p.Opacity > 1+1e-6 {
			t.Fatalf("opacity %v outside [0,1]", p.Opacity)
		}
	})

	pd := components.Pulse.Get(s.Entry(id))
	if pd.Iteration < 4 || pd.Iteration > 5 {
		t.Errorf("iterations after 11s = %d, want 5 (2s each)", pd.Iteration)
	}
	if !h.Scheduled() {
		t.Error("infinite pulse stopped on its own")
	}

	ep.Stop(h)
	if s.Len() != 0 || rt.Sched.Pending() != 0 {
		t.Errorf("after stop: nodes=%d pending=%d", s.Len(), rt.Sched.Pending())
	}
}

func TestPulseFiniteRepeat(t *testing.T) {
	cfg := testConfig().Pulse
	cfg.Repeat = 1
	rt := newTestRuntime()
	s := newTestSurface()
	h := NewEagleVisionPulse(cfg, rt).Start(s)

	runFor(rt, 6, nil)

	if h.Scheduled() {
		t.Error("pulse with repeat 1 still scheduled after two plays")
	}
	e := pulseEntry(t, h)
	if got := components.Pulse.Get(e).Iteration; got != 1 {
		t.Errorf("iterations = %d, want 1", got)
	}
	if p := components.Particle.Get(e); p.Opacity > 1e-6 {
		t.Errorf("finished pulse opacity = %v, want 0", p.Opacity)
	}
	h.Stop()
	if s.Len() != 0 {
		t.Errorf("nodes after stop = %d", s.Len())
	}
}

func TestPulseCentered(t *testing.T) {
	rt := newTestRuntime()
	s := newTestSurface()
	h := NewEagleVisionPulse(testConfig().Pulse, rt).Start(s)
	defer h.Stop()

	p := components.Particle.Get(pulseEntry(t, h))
	if p.X != 480 || p.Y != 270 {
		t.Errorf("pulse at (%v,%v), want (480,270)", p.X, p.Y)
	}
	if p.Radius != 480 {
		t.Errorf("radius = %v, want 480", p.Radius)
	}
}

func TestPulseKeepsPeriodWithUnevenFrames(t *testing.T) {
	rt := newTestRuntime()
	s := newTestSurface()
	h := NewEagleVisionPulse(testConfig().Pulse, rt).Start(s)
	defer h.Stop()

	// 0.3s frames do not divide the 2s period; 101 frames is 30.3s
	for i := 0; i < 101; i++ {
		rt.Sched.Tick(0.3)
	}
	if got := components.Pulse.Get(pulseEntry(t, h)).Iteration; got != 15 {
		t.Errorf("iterations after 30.3s = %d, want 15", got)
	}
}
