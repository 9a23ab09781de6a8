// Package effects owns the hero section's effects for one mount: scroll
// wiring, the reveal timeline, the four particle emitters and their shared
// frame scheduler.
package effects

import (
	"log"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/emitters"
	"github.com/automoto/scrollfx/reveal"
	"github.com/automoto/scrollfx/scroll"
	"github.com/automoto/scrollfx/surface"
	"github.com/yohamta/donburi"
)

// Layout describes the hero section at mount time
type Layout struct {
	Heading string
	// Box is the heading box in viewport pixels while the section is pinned
	Box      components.Rect
	Bounds   scroll.Bounds
	Viewport scroll.Viewport
	Offset   float64 // scroll offset at mount
}

// Controller drives one hero section. It is not safe for concurrent use;
// Mount, Tick and Unmount are called from the host's frame loop.
type Controller struct {
	cfg config.Effects

	sched    *anim.Scheduler
	rt       *emitters.Runtime
	tracker  *scroll.Tracker
	smoother *scroll.Smoother
	seq      *reveal.Sequencer

	blade  *emitters.Blade
	sand   *emitters.Sand
	glyphs *emitters.HieroglyphBurst
	pulse  *emitters.EagleVisionPulse

	section *surface.Surface
	page    *surface.Surface
	heading donburi.Entity
	layout  Layout

	unsubscribe func()
	runs        []*emitters.Handle
	bladeRun    *emitters.Handle

	pending    scroll.Signal
	hasPending bool
	// a resize survives later signals in the same frame
	resizeTo      scroll.Viewport
	resizePending bool

	progress float64
	mounted  bool
}

// New creates an unmounted controller
func New(cfg config.Effects) *Controller {
	sched := anim.NewScheduler()
	rt := emitters.NewRuntime(sched, cfg.Seed)
	return &Controller{
		cfg:      cfg,
		sched:    sched,
		rt:       rt,
		tracker:  scroll.NewTracker(cfg.Scroll.VirtualDistance),
		smoother: scroll.NewSmoother(cfg.Scroll.ScrubLag),
		seq:      reveal.New(cfg.Reveal),
		blade:    emitters.NewBlade(cfg.Blade, rt),
		sand:     emitters.NewSand(cfg.Sand, rt),
		glyphs:   emitters.NewHieroglyphBurst(cfg.Glyphs, rt),
		pulse:    emitters.NewEagleVisionPulse(cfg.Pulse, rt),
	}
}

// Mount attaches the heading to section, subscribes to signals and starts the
// emitters. Blade sparks go to page; everything else lives in section. A
// missing or unmounted section disables the effects.
func (c *Controller) Mount(section, page *surface.Surface, signals scroll.Source, layout Layout) {
	if c.mounted {
		log.Printf("[effects] already mounted on %q", c.section.Name())
		return
	}
	if !section.Mounted() {
		log.Printf("[effects] hero section missing, effects disabled")
		return
	}

	e := archetypes.Heading.Spawn(section)
	if e == nil {
		return
	}
	components.Heading.SetValue(e, components.HeadingData{
		Text: layout.Heading,
		Box:  layout.Box,
	})

	c.section, c.page = section, page
	c.heading = e.Entity()
	c.layout = layout
	c.mounted = true

	if signals != nil {
		c.unsubscribe = signals.Subscribe(c.onSignal)
	} else {
		log.Printf("[effects] no scroll source, heading stays at its initial state")
	}

	c.bladeRun = c.blade.Start(page)
	c.runs = []*emitters.Handle{
		c.bladeRun,
		c.sand.Start(section),
		c.glyphs.Start(section),
		c.pulse.Start(section),
	}

	p := c.tracker.Update(scroll.Signal{
		Kind:     scroll.KindResize,
		Offset:   layout.Offset,
		Viewport: layout.Viewport,
		Bounds:   layout.Bounds,
	})
	c.smoother.Jump(p)
	c.apply(p)
}

func (c *Controller) onSignal(sig scroll.Signal) {
	if !c.mounted {
		return
	}
	c.pending = sig
	c.hasPending = true
	if sig.Kind == scroll.KindResize {
		c.resizeTo = sig.Viewport
		c.resizePending = true
	}
}

// Tick advances the controller by one frame. Signals received since the last
// tick are coalesced into a single progress recompute.
func (c *Controller) Tick(dt float64) {
	if !c.mounted {
		return
	}

	if c.resizePending {
		vp := c.resizeTo
		c.resizePending = false
		c.layout.Viewport = vp
		c.section.Resize(vp.Width, vp.Height)
		c.page.Resize(vp.Width, vp.Height)
	}
	if c.hasPending {
		sig := c.pending
		c.hasPending = false
		c.layout.Bounds = sig.Bounds
		c.layout.Offset = sig.Offset
		c.smoother.SetTarget(c.tracker.Update(sig))
	}

	p := c.smoother.Step(dt)
	if p != c.progress {
		c.apply(p)
		c.blade.Emit(c.bladeRun, c.seq.Phase(), c.layout.Box)
	}

	c.sched.Tick(dt)
}

// Relayout moves the heading box, typically after the viewport changed.
// Blade sparks spawn inside the new box from the next frame on.
func (c *Controller) Relayout(box components.Rect) {
	c.layout.Box = box
	if !c.mounted {
		return
	}
	e := c.section.Entry(c.heading)
	if e == nil {
		return
	}
	h := components.Heading.Get(e)
	if h.Box == box {
		return
	}
	h.Box = box
	h.Version++
}

// apply runs the sequencer and writes the result to the heading node if it
// differs from what is already there.
func (c *Controller) apply(p float64) {
	c.progress = p
	st := c.seq.ApplyProgress(p)

	e := c.section.Entry(c.heading)
	if e == nil {
		return
	}
	h := components.Heading.Get(e)
	if h.Version > 0 && h.State == st {
		return
	}
	h.State = st
	h.Version++
}

// Unmount stops every emitter, removes the heading and unsubscribes. It is
// safe to call more than once.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.blade.Stop(c.runs[0])
	c.sand.Stop(c.runs[1])
	c.glyphs.Stop(c.runs[2])
	c.pulse.Stop(c.runs[3])
	c.runs, c.bladeRun = nil, nil

	c.section.Remove(c.heading)
	c.section, c.page = nil, nil
	c.heading = 0

	c.hasPending, c.resizePending = false, false
	c.progress = 0
	c.smoother.Jump(0)
	c.seq.Reset()
	c.sched.Clear()
}

// OnPhase registers a listener for heading phase changes
func (c *Controller) OnPhase(fn reveal.PhaseListener) {
	c.seq.OnPhase(fn)
}

// Progress returns the last applied progress
func (c *Controller) Progress() float64 { return c.progress }

// State returns the last applied heading state
func (c *Controller) State() reveal.State { return c.seq.State() }

// Mounted reports whether the controller is attached to a section
func (c *Controller) Mounted() bool { return c.mounted }

// Pending returns the number of scheduled animation loops
func (c *Controller) Pending() int { return c.sched.Pending() }

// Runs returns the emitter runs of the current mount, blade first
func (c *Controller) Runs() []*emitters.Handle {
	return append([]*emitters.Handle(nil), c.runs...)
}

// Heading returns the heading node's current data
func (c *Controller) Heading() (components.HeadingData, bool) {
	if !c.mounted {
		return components.HeadingData{}, false
	}
	e := c.section.Entry(c.heading)
	if e == nil {
		return components.HeadingData{}, false
	}
	return *components.Heading.Get(e), true
}
