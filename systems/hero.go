package systems

import (
	"log"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/effects"
	"github.com/automoto/scrollfx/reveal"
	"github.com/automoto/scrollfx/scroll"
	"github.com/automoto/scrollfx/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HeroData is the demo page: one hero section with its effects controller,
// the page-level root and the virtual scroll position.
type HeroData struct {
	FX      *effects.Controller
	Signals *scroll.Dispatcher
	Section *surface.Surface
	Page    *surface.Surface
	Layout  effects.Layout

	Offset   float64
	Viewport scroll.Viewport
	// PendingViewport is set by the host's Layout and dispatched on the next update
	PendingViewport scroll.Viewport

	ShowState bool
}

// Hero is the singleton page component
var Hero = donburi.NewComponentType[HeroData]()

// MaxOffset is the furthest the virtual page can scroll
func (h *HeroData) MaxOffset() float64 {
	return (cfg.C.PageHeight - 1) * h.Viewport.Height
}

func (h *HeroData) signal(kind scroll.Kind) scroll.Signal {
	return scroll.Signal{
		Kind:     kind,
		Offset:   h.Offset,
		Viewport: h.Viewport,
		Bounds:   h.Layout.Bounds,
	}
}

// NewHero creates the page singleton and mounts its effects
func NewHero(w donburi.World, fx cfg.Effects, layout effects.Layout) *HeroData {
	vp := layout.Viewport
	h := &HeroData{
		FX:              effects.New(fx),
		Signals:         scroll.NewDispatcher(),
		Section:         surface.New("hero", vp.Width, vp.Height),
		Page:            surface.New("page", vp.Width, vp.Height),
		Layout:          layout,
		Offset:          layout.Offset,
		Viewport:        vp,
		PendingViewport: vp,
		ShowState:       cfg.Debug.ShowState,
	}
	h.FX.OnPhase(func(from, to reveal.Phase) {
		log.Printf("[scene] heading %s -> %s", from, to)
	})
	h.FX.Mount(h.Section, h.Page, h.Signals, layout)

	entry := w.Entry(w.Create(Hero))
	Hero.Set(entry, h)
	return h
}

// GetHero returns the page singleton, if the scene has created one
func GetHero(e *ecs.ECS) (*HeroData, bool) {
	entry, ok := Hero.First(e.World)
	if !ok {
		return nil, false
	}
	return Hero.Get(entry), true
}

// UpdateScroll turns wheel, key and stick input into scroll signals
func UpdateScroll(e *ecs.ECS) {
	h, ok := GetHero(e)
	if !ok {
		return
	}

	if h.PendingViewport != h.Viewport {
		h.Viewport = h.PendingViewport
		h.Offset = clampOffset(h.Offset, h.MaxOffset())
		h.Layout.Box = HeadingBox(h.Layout.Heading, h.Viewport)
		h.FX.Relayout(h.Layout.Box)
		h.Signals.Dispatch(h.signal(scroll.KindResize))
	}

	input := getOrCreateInput(e)
	delta := -input.Wheel * cfg.C.WheelStep
	delta += input.Stick * cfg.Input.KeyScrollStep * 2
	if GetAction(input, cfg.ActionScrollDown).Pressed {
		delta += cfg.Input.KeyScrollStep
	}
	if GetAction(input, cfg.ActionScrollUp).Pressed {
		delta -= cfg.Input.KeyScrollStep
	}
	if GetAction(input, cfg.ActionPageDown).JustPressed {
		delta += h.Viewport.Height
	}
	if GetAction(input, cfg.ActionPageUp).JustPressed {
		delta -= h.Viewport.Height
	}
	if GetAction(input, cfg.ActionTop).JustPressed {
		delta = -h.Offset
	}
	if delta == 0 {
		return
	}

	next := clampOffset(h.Offset+delta, h.MaxOffset())
	if next == h.Offset {
		return
	}
	h.Offset = next
	h.Signals.Dispatch(h.signal(scroll.KindScroll))
}

func clampOffset(offset, limit float64) float64 {
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// UpdateHero handles the mount toggle
func UpdateHero(e *ecs.ECS) {
	h, ok := GetHero(e)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleMount).JustPressed {
		ToggleMount(h)
	}
}

// TickEffects advances the hero effects by one frame
func TickEffects(e *ecs.ECS) {
	if h, ok := GetHero(e); ok {
		h.FX.Tick(1 / float64(ebiten.TPS()))
	}
}

// ToggleMount unmounts the hero effects or remounts them at the current scroll
// position.
func ToggleMount(h *HeroData) {
	if h.FX.Mounted() {
		h.FX.Unmount()
		h.Section.Unmount()
		log.Printf("[scene] effects unmounted")
		return
	}
	layout := h.Layout
	layout.Viewport = h.Viewport
	layout.Offset = h.Offset
	layout.Box = HeadingBox(layout.Heading, h.Viewport)
	h.Section.Remount()
	h.Section.Resize(h.Viewport.Width, h.Viewport.Height)
	h.Page.Resize(h.Viewport.Width, h.Viewport.Height)
	h.FX.Mount(h.Section, h.Page, h.Signals, layout)
	log.Printf("[scene] effects mounted at offset %.0f", h.Offset)
}
