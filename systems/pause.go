package systems

import (
	"image/color"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{0, 0, 0, 60}

// UpdatePause freezes the effects while the window is in the background.
// This system should run BEFORE TickEffects.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !ebiten.IsFocused()
}

// DrawPause dims the page and labels it while the effects are frozen
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), pauseOverlay, false)

	hint := "PAUSED"
	face := fonts.Small.Get()
	b := text.BoundString(face, hint)
	text.Draw(screen, hint, face, int(width-float64(b.Dx()))/2, int(height)-12, cfg.DebugText)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
