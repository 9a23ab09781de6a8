package effects

import (
	"math"
	"testing"

	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/emitters"
	"github.com/automoto/scrollfx/reveal"
	"github.com/automoto/scrollfx/scroll"
	"github.com/automoto/scrollfx/surface"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

var viewport = scroll.Viewport{Width: 1000, Height: 800}

// distance is the pin length for viewport at the default factor
const distance = 1600.0

func testLayout() Layout {
	return Layout{
		Heading:  "Assassin's Creed",
		Box:      components.Rect{X: 200, Y: 300, W: 600, H: 120},
		Bounds:   scroll.Bounds{Top: 0, Height: 800},
		Viewport: viewport,
	}
}

type fixture struct {
	c       *Controller
	section *surface.Surface
	page    *surface.Surface
	signals *scroll.Dispatcher
}

func mount(t *testing.T, cfg config.Effects) *fixture {
	t.Helper()
	f := &fixture{
		c:       New(cfg),
		section: surface.New("hero", viewport.Width, viewport.Height),
		page:    surface.New("page", viewport.Width, viewport.Height),
		signals: scroll.NewDispatcher(),
	}
	f.c.Mount(f.section, f.page, f.signals, testLayout())
	if !f.c.Mounted() {
		t.Fatal("controller did not mount")
	}
	return f
}

func (f *fixture) scrollTo(offset float64) {
	f.signals.Dispatch(scroll.Signal{
		Kind:     scroll.KindScroll,
		Offset:   offset,
		Viewport: viewport,
		Bounds:   testLayout().Bounds,
	})
}

func (f *fixture) run(seconds float64) {
	for i := 0; i < int(seconds*60); i++ {
		f.c.Tick(frame)
	}
}

func TestMountThenImmediateUnmount(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	if f.signals.Len() != 1 {
		t.Fatalf("listeners after mount = %d, want 1", f.signals.Len())
	}
	if f.section.Count(tags.Heading) != 1 {
		t.Fatal("heading not attached")
	}

	f.c.Unmount()

	if f.c.Pending() != 0 {
		t.Errorf("pending loops after unmount = %d", f.c.Pending())
	}
	if f.section.Len() != 0 || f.page.Len() != 0 {
		t.Errorf("nodes after unmount: section=%d page=%d", f.section.Len(), f.page.Len())
	}
	if f.signals.Len() != 0 {
		t.Errorf("listeners after unmount = %d", f.signals.Len())
	}
	if f.c.Mounted() {
		t.Error("still mounted")
	}

	f.c.Unmount()
	f.scrollTo(800)
	f.run(1)
	if f.section.Len() != 0 || f.c.Pending() != 0 {
		t.Error("unmounted controller reacted to signals")
	}
}

func TestMountStartsEmitters(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	if got := f.section.Count(tags.Sand); got != 20 {
		t.Errorf("sand = %d, want 20", got)
	}
	if got := f.section.Count(tags.Hieroglyph); got != 20 {
		t.Errorf("glyphs = %d, want 20", got)
	}
	if got := f.section.Count(tags.EagleEye); got != 1 {
		t.Errorf("pulse = %d, want 1", got)
	}
	if got := f.page.Count(tags.Blade); got != 0 {
		t.Errorf("blade sparks before scrolling = %d", got)
	}
	if got := len(f.c.Runs()); got != 4 {
		t.Errorf("runs = %d, want 4", got)
	}
}

func TestProgressScenarios(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
		phase  reveal.Phase
	}{
		{"section top", 0, 0, reveal.PhaseIdle},
		{"before section", -200, 0, reveal.PhaseIdle},
		{"one viewport into pin", 800, 0.5, reveal.PhaseSliceOut},
		{"pin end", distance, 1, reveal.PhaseSettle},
		{"past pin", distance * 3, 1, reveal.PhaseSettle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mount(t, config.DefaultEffects())
			defer f.c.Unmount()

			f.scrollTo(tt.offset)
			f.c.Tick(frame)

			if got := f.c.Progress(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("progress = %v, want %v", got, tt.want)
			}
			if got := f.c.State().Phase; got != tt.phase {
				t.Errorf("phase = %v, want %v", got, tt.phase)
			}
		})
	}
}

func TestHeadingReflectsState(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	h, ok := f.c.Heading()
	if !ok {
		t.Fatal("no heading")
	}
	if h.State.Clip != reveal.ClipFull {
		t.Errorf("initial clip = %v, want full", h.State.Clip)
	}
	if h.Text != "Assassin's Creed" {
		t.Errorf("text = %q", h.Text)
	}

	f.scrollTo(distance)
	f.c.Tick(frame)
	h, _ = f.c.Heading()
	if h.State.Clip != reveal.ClipOpened {
		t.Errorf("final clip = %v, want opened", h.State.Clip)
	}
	if h.State.Color != config.Gold {
		t.Errorf("final color = %v, want gold", h.State.Color)
	}
	if h.State.Glow != 1 || h.State.GlowRadius != 10 {
		t.Errorf("final glow = %v radius %v", h.State.Glow, h.State.GlowRadius)
	}
}

func TestSignalBurstCoalesces(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	h, _ := f.c.Heading()
	before := h.Version

	var steps int
	f.c.OnPhase(func(from, to reveal.Phase) { steps++ })

	for i := 1; i <= 50; i++ {
		f.scrollTo(float64(i) * 10)
	}
	f.c.Tick(frame)

	h, _ = f.c.Heading()
	if h.Version != before+1 {
		t.Errorf("heading written %d times for one tick, want 1", h.Version-before)
	}
	if want := 500 / distance; math.Abs(f.c.Progress()-want) > 1e-9 {
		t.Errorf("progress = %v, want last signal's %v", f.c.Progress(), want)
	}
	if steps != 1 {
		t.Errorf("phase steps = %d, want 1 (idle to slice-in)", steps)
	}

	// no new signal, no new write
	f.c.Tick(frame)
	h2, _ := f.c.Heading()
	if h2.Version != h.Version {
		t.Error("heading rewritten without a progress change")
	}
}

func TestBladeOnlyWhileSlicing(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	// idle is [0, 0.2)
	for off := 0.0; off < 0.19*distance; off += 10 {
		f.scrollTo(off)
		f.c.Tick(frame)
	}
	if got := f.page.Count(tags.Blade); got != 0 {
		t.Fatalf("sparks during idle = %d", got)
	}

	// slicing is [0.2, 0.6)
	for off := 0.2 * distance; off < 0.59*distance; off += 10 {
		f.scrollTo(off)
		f.c.Tick(frame)
	}
	if got := f.page.Count(tags.Blade); got == 0 {
		t.Fatal("no sparks while slicing")
	}
	if got := f.section.Count(tags.Blade); got != 0 {
		t.Errorf("sparks attached to the section = %d", got)
	}

	// no scrolling: no new sparks, existing ones burn out
	f.run(2)
	if got := f.page.Count(tags.Blade); got != 0 {
		t.Errorf("sparks after 2s without scrolling = %d", got)
	}

	f.scrollTo(0.9 * distance)
	f.c.Tick(frame)
	if got := f.page.Count(tags.Blade); got != 0 {
		t.Errorf("sparks after scrolling into settle = %d", got)
	}
}

func TestBladeCapHolds(t *testing.T) {
	cfg := config.DefaultEffects()
	cfg.Blade.MaxActive = 8
	f := mount(t, cfg)
	defer f.c.Unmount()

	for i := 0; i < 600; i++ {
		// oscillate inside slice-in so progress changes every tick
		off := 0.25*distance + float64(i%20)
		f.scrollTo(off)
		f.c.Tick(frame)
		if got := f.page.Count(tags.Blade); got > 8 {
			t.Fatalf("sparks = %d, above cap", got)
		}
	}
}

func TestUnmountMidAnimation(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	for off := 0.2 * distance; off < 0.5*distance; off += 20 {
		f.scrollTo(off)
		f.c.Tick(frame)
	}
	f.run(1.5)
	runs := f.c.Runs()

	f.c.Unmount()

	for _, h := range runs {
		if h.Active() || h.Scheduled() {
			t.Errorf("%s run still active after unmount", h.Emitter())
		}
		if n := emitters.Owned(f.section, h.Run()) + emitters.Owned(f.page, h.Run()); n != 0 {
			t.Errorf("%s left %d nodes", h.Emitter(), n)
		}
	}
	if f.c.Pending() != 0 {
		t.Errorf("pending = %d", f.c.Pending())
	}
}

func TestRemount(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	f.scrollTo(distance)
	f.c.Tick(frame)
	f.c.Unmount()

	f.c.Mount(f.section, f.page, f.signals, testLayout())
	defer f.c.Unmount()

	if f.c.State().Phase != reveal.PhaseIdle {
		t.Errorf("phase after remount = %v, want idle", f.c.State().Phase)
	}
	if f.signals.Len() != 1 {
		t.Errorf("listeners after remount = %d, want 1", f.signals.Len())
	}
	if got := f.section.Count(tags.Heading); got != 1 {
		t.Errorf("headings after remount = %d", got)
	}
}

func TestMissingSection(t *testing.T) {
	c := New(config.DefaultEffects())
	signals := scroll.NewDispatcher()

	c.Mount(nil, surface.New("page", 100, 100), signals, testLayout())
	if c.Mounted() || signals.Len() != 0 || c.Pending() != 0 {
		t.Error("mounted without a section")
	}

	gone := surface.New("hero", 100, 100)
	gone.Unmount()
	c.Mount(gone, nil, signals, testLayout())
	if c.Mounted() {
		t.Error("mounted on a detached section")
	}

	c.Tick(frame)
	c.Unmount()
}

func TestMissingPageKeepsSectionEffects(t *testing.T) {
	c := New(config.DefaultEffects())
	section := surface.New("hero", viewport.Width, viewport.Height)
	signals := scroll.NewDispatcher()
	c.Mount(section, nil, signals, testLayout())
	defer c.Unmount()

	signals.Dispatch(scroll.Signal{Offset: 0.3 * distance, Viewport: viewport})
	c.Tick(frame)

	if c.State().Phase != reveal.PhaseSliceIn {
		t.Errorf("phase = %v", c.State().Phase)
	}
	if got := section.Count(tags.Sand); got != 20 {
		t.Errorf("sand = %d", got)
	}
}

func TestResizeSignal(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	f.scrollTo(800)
	f.c.Tick(frame)

	// halving the viewport halves the pin distance
	small := scroll.Viewport{Width: 500, Height: 400}
	f.signals.Dispatch(scroll.Signal{Kind: scroll.KindResize, Offset: 800, Viewport: small})
	f.c.Tick(frame)

	if got := f.c.Progress(); got != 1 {
		t.Errorf("progress after resize = %v, want 1", got)
	}
	if w, h := f.section.Size(); w != 500 || h != 400 {
		t.Errorf("section size = %vx%v", w, h)
	}
}

func TestResizeThenScrollSameFrame(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	small := scroll.Viewport{Width: 500, Height: 400}
	bounds := testLayout().Bounds
	f.signals.Dispatch(scroll.Signal{Kind: scroll.KindResize, Offset: 100, Viewport: small, Bounds: bounds})
	f.signals.Dispatch(scroll.Signal{Kind: scroll.KindScroll, Offset: 140, Viewport: small, Bounds: bounds})
	f.c.Tick(frame)

	for _, s := range []*surface.Surface{f.section, f.page} {
		if w, h := s.Size(); w != 500 || h != 400 {
			t.Errorf("%s size = %vx%v, want 500x400", s.Name(), w, h)
		}
	}
	// pin distance is 2 * 400
	if got := f.c.Progress(); math.Abs(got-0.175) > 1e-9 {
		t.Errorf("progress = %v, want 0.175", got)
	}

	// the resize is applied once
	f.section.Resize(1000, 800)
	f.scrollTo(140)
	f.c.Tick(frame)
	if w, _ := f.section.Size(); w != 1000 {
		t.Errorf("stale resize reapplied, section width = %v", w)
	}
}

func TestRelayoutMovesHeadingAndSparks(t *testing.T) {
	f := mount(t, config.DefaultEffects())
	defer f.c.Unmount()

	h, _ := f.c.Heading()
	before := h.Version

	box := components.Rect{X: 0, Y: 600, W: 100, H: 50}
	f.c.Relayout(box)
	h, _ = f.c.Heading()
	if h.Box != box {
		t.Fatalf("heading box = %+v, want %+v", h.Box, box)
	}
	if h.Version != before+1 {
		t.Errorf("version = %d, want %d", h.Version, before+1)
	}

	// same box, no write
	f.c.Relayout(box)
	if h2, _ := f.c.Heading(); h2.Version != h.Version {
		t.Error("heading rewritten for an unchanged box")
	}

	for off := 0.2 * distance; off < 0.4*distance; off += 10 {
		f.scrollTo(off)
		f.c.Tick(frame)
	}
	if f.page.Count(tags.Blade) == 0 {
		t.Fatal("no sparks while slicing")
	}
	// sparks only rise, so every one starts at or below the new box top
	tags.Blade.Each(f.page.World(), func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Y < box.Y-100-1e-6 || p.Y > box.Y+box.H+1e-6 {
			t.Errorf("spark at y=%v outside the relaid box", p.Y)
		}
	})
}

func TestScrubLag(t *testing.T) {
	cfg := config.DefaultEffects()
	cfg.Scroll.ScrubLag = 1
	f := mount(t, cfg)
	defer f.c.Unmount()

	f.scrollTo(distance)
	f.c.Tick(frame)
	if p := f.c.Progress(); p <= 0 || p >= 0.1 {
		t.Errorf("progress after one lagged frame = %v", p)
	}

	prev := f.c.Progress()
	for i := 0; i < 60*10; i++ {
		f.c.Tick(frame)
		if p := f.c.Progress(); p < prev {
			t.Fatalf("lagged progress went backwards: %v -> %v", prev, p)
		}
		prev = f.c.Progress()
	}
	if f.c.Progress() != 1 {
		t.Errorf("progress after 10s = %v, want 1", f.c.Progress())
	}
}

func TestIndependentInstances(t *testing.T) {
	a := mount(t, config.DefaultEffects())
	b := mount(t, config.DefaultEffects())
	defer b.c.Unmount()

	a.scrollTo(distance)
	a.c.Tick(frame)
	b.c.Tick(frame)

	if a.c.State().Phase != reveal.PhaseSettle {
		t.Errorf("a phase = %v", a.c.State().Phase)
	}
	if b.c.State().Phase != reveal.PhaseIdle {
		t.Errorf("b moved with a's signals: %v", b.c.State().Phase)
	}

	a.c.Unmount()
	if b.c.Pending() == 0 || b.section.Count(tags.Sand) != 20 {
		t.Error("unmounting a disturbed b")
	}
}
