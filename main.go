package main

import (
	"flag"
	"log"

	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Unmount()
}

type Game struct {
	width, height int
	scene         Scene
}

func NewGame() *Game {
	return &Game{
		width:  config.C.Width,
		height: config.C.Height,
		scene:  scenes.NewHeroScene(config.C.Width, config.C.Height),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func main() {
	flag.BoolVar(&config.Debug.ShowState, "state", config.Debug.ShowState, "Show progress and phase overlay")
	flag.Parse()

	fx, err := config.LoadFromEnv(config.FX)
	if err != nil {
		log.Fatalf("Failed to load effects config: %v", err)
	}
	config.FX = fx

	window, err := config.LoadWindowFromEnv(*config.C)
	if err != nil {
		log.Fatalf("Failed to load window config: %v", err)
	}
	config.C = &window

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	g := NewGame()
	err = ebiten.RunGame(g)
	g.scene.Unmount()
	if err != nil {
		log.Fatal(err)
	}
}
