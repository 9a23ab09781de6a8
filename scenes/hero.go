package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/scrollfx/assets"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/effects"
	"github.com/automoto/scrollfx/scroll"
	"github.com/automoto/scrollfx/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HeroTitle is the heading revealed by the scroll timeline
const HeroTitle = "Assassin's Creed"

// HeroScene is a single scrolling page with the pinned hero section
type HeroScene struct {
	ecs  *ecs.ECS
	hero *systems.HeroData
	once sync.Once

	width, height int
}

// NewHeroScene creates the hero page for a viewport of the given size
func NewHeroScene(width, height int) *HeroScene {
	return &HeroScene{width: width, height: height}
}

func (hs *HeroScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HeroScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

// Resize records a new viewport; the resize signal goes out on the next update
func (hs *HeroScene) Resize(width, height int) {
	hs.width, hs.height = width, height
	if hs.hero != nil {
		hs.hero.PendingViewport = scroll.Viewport{Width: float64(width), Height: float64(height)}
	}
}

// Unmount tears down the hero effects once the game loop has exited
func (hs *HeroScene) Unmount() {
	if hs.hero != nil {
		hs.hero.FX.Unmount()
	}
}

func (hs *HeroScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("[scene] glow disabled: %v", err)
	}

	hs.ecs = ecs.NewECS(donburi.NewWorld())

	hs.ecs.AddSystem(systems.UpdateInput)
	hs.ecs.AddSystem(systems.UpdatePause)
	hs.ecs.AddSystem(systems.UpdateScroll)
	hs.ecs.AddSystem(systems.UpdateHero)

	// Effects freeze while paused; scrolling still queues signals
	hs.ecs.AddSystem(systems.WithPauseCheck(systems.TickEffects))

	hs.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawPulse)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawGlyphs)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawSand)
	hs.ecs.AddRenderer(cfg.Default, systems.DrawHeading)
	hs.ecs.AddRenderer(cfg.Overlay, systems.DrawBlades)
	hs.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	hs.ecs.AddRenderer(cfg.Overlay, systems.DrawState)

	vp := scroll.Viewport{Width: float64(hs.width), Height: float64(hs.height)}
	hs.hero = systems.NewHero(hs.ecs.World, cfg.FX, effects.Layout{
		Heading:  HeroTitle,
		Box:      systems.HeadingBox(HeroTitle, vp),
		Bounds:   scroll.Bounds{Top: cfg.C.SectionTop, Height: vp.Height},
		Viewport: vp,
	})
}
