package systems

import (
	"fmt"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawState prints progress, phase and node counts in the top-left corner
func DrawState(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok || !h.ShowState {
		return
	}

	lines := []string{
		fmt.Sprintf("offset %.0f / %.0f", h.Offset, h.MaxOffset()),
		"effects unmounted (M to mount)",
	}
	if h.FX.Mounted() {
		st := h.FX.State()
		lines[1] = fmt.Sprintf("progress %.3f  %s  %s", h.FX.Progress(), st.Phase, st.Clip)
		lines = append(lines,
			fmt.Sprintf("sand %d  glyphs %d  pulse %d  blades %d",
				h.Section.Count(tags.Sand), h.Section.Count(tags.Hieroglyph),
				h.Section.Count(tags.EagleEye), h.Page.Count(tags.Blade)),
			fmt.Sprintf("loops %d  listeners %d", h.FX.Pending(), h.Signals.Len()),
		)
	}

	face := fonts.Small.Get()
	for i, l := range lines {
		text.Draw(screen, l, face, 8, 16+i*14, cfg.DebugText)
	}
}
