// Package emitters implements the decorative particle generators of the hero
// section. Each emitter run owns its nodes and a single scheduled loop; the
// loop checks the run's live flag every frame instead of chaining completion
// callbacks, so stopping a run leaves nothing behind.
package emitters

import (
	"image/color"
	"math/rand"

	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/surface"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// Emitter is the shared start/stop contract
type Emitter interface {
	Name() string
	Start(s *surface.Surface) *Handle
	Stop(h *Handle)
}

// Runtime is the per-controller state emitters share: the frame scheduler,
// the random source and the run id counter.
type Runtime struct {
	Sched *anim.Scheduler
	Rand  *rand.Rand

	runs uint64
}

// NewRuntime creates a runtime with its own scheduler and a seeded source
func NewRuntime(sched *anim.Scheduler, seed int64) *Runtime {
	if sched == nil {
		sched = anim.NewScheduler()
	}
	return &Runtime{
		Sched: sched,
		Rand:  rand.New(rand.NewSource(seed)),
	}
}

func (rt *Runtime) nextRun() uint64 {
	rt.runs++
	return rt.runs
}

// between returns a uniform value in [lo, hi)
func (rt *Runtime) between(lo, hi float64) float64 {
	return lo + rt.Rand.Float64()*(hi-lo)
}

// Handle is one running emission on one surface
type Handle struct {
	emitter string
	run     uint64
	surface *surface.Surface
	sched   *anim.Scheduler
	task    anim.TaskID
	nodes   []donburi.Entity
	live    bool
}

func newHandle(rt *Runtime, name string, s *surface.Surface) *Handle {
	return &Handle{
		emitter: name,
		run:     rt.nextRun(),
		surface: s,
		sched:   rt.Sched,
		live:    s.Mounted(),
	}
}

// Emitter returns the name of the emitter that started the run
func (h *Handle) Emitter() string {
	if h == nil {
		return ""
	}
	return h.emitter
}

// Run returns the run id stamped on every node this run owns
func (h *Handle) Run() uint64 {
	if h == nil {
		return 0
	}
	return h.run
}

// Active reports whether the run is still emitting or animating
func (h *Handle) Active() bool {
	return h != nil && h.live
}

// Len returns the number of nodes the run currently owns
func (h *Handle) Len() int {
	if h == nil {
		return 0
	}
	return len(h.nodes)
}

// Scheduled reports whether the run's loop is still pending
func (h *Handle) Scheduled() bool {
	return h != nil && h.task != 0 && h.sched.Scheduled(h.task)
}

// Stop cancels the run's loop and detaches every owned node. It is safe to
// call on a nil handle and more than once.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.live = false
	if h.task != 0 {
		h.sched.Cancel(h.task)
		h.task = 0
	}
	for _, id := range h.nodes {
		h.surface.Remove(id)
	}
	h.nodes = nil
}

func (h *Handle) schedule(fn anim.TaskFunc) {
	h.task = h.sched.Schedule(anim.TaskFunc(func(dt float64) bool {
		if !h.live {
			return false
		}
		return fn(dt)
	}))
}

func (h *Handle) own(e *donburi.Entry) {
	components.Owner.SetValue(e, components.OwnerData{Run: h.run})
	h.nodes = append(h.nodes, e.Entity())
}

// advance steps every owned motion by dt and calls done for each node whose
// motion finished this frame. done runs after the whole population has been
// advanced, in ownership order.
func (h *Handle) advance(dt float64, done func(id donburi.Entity)) {
	var finished []donburi.Entity
	kept := h.nodes[:0]
	for _, id := range h.nodes {
		e := h.surface.Entry(id)
		if e == nil {
			continue
		}
		kept = append(kept, id)

		m := components.Motion.Get(e)
		if m.Done() {
			continue
		}
		f, ok := m.Update(dt)
		components.Particle.Get(e).Frame = f
		if ok {
			finished = append(finished, id)
		}
	}
	h.nodes = kept

	for _, id := range finished {
		done(id)
	}
}

// release detaches one owned node
func (h *Handle) release(id donburi.Entity) {
	h.surface.Remove(id)
	for i, n := range h.nodes {
		if n == id {
			h.nodes = append(h.nodes[:i], h.nodes[i+1:]...)
			return
		}
	}
}

// Owned counts the nodes on s stamped with run
func Owned(s *surface.Surface, run uint64) int {
	if s == nil {
		return 0
	}
	n := 0
	components.Owner.Each(s.World(), func(e *donburi.Entry) {
		if components.Owner.Get(e).Run == run {
			n++
		}
	})
	return n
}

func spawnMotion(e *donburi.Entry, p components.ParticleData, m *anim.Motion) {
	components.Particle.SetValue(e, p)
	components.Motion.Set(e, m)
}

func parseTint(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
