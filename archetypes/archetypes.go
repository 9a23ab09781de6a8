package archetypes

import (
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/surface"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
)

var (
	Heading = newArchetype(
		tags.Heading,
		components.Heading,
	)
	BladeParticle = newArchetype(
		tags.Blade,
		components.Owner,
		components.Particle,
		components.Motion,
	)
	SandParticle = newArchetype(
		tags.Sand,
		components.Owner,
		components.Particle,
		components.Motion,
	)
	Hieroglyph = newArchetype(
		tags.Hieroglyph,
		components.Owner,
		components.Particle,
		components.Motion,
		components.Symbol,
	)
	EagleEye = newArchetype(
		tags.EagleEye,
		components.Owner,
		components.Particle,
		components.Motion,
		components.Pulse,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn attaches a node with the archetype's components to s. It returns nil
// when s is absent or unmounted.
func (a *archetype) Spawn(s *surface.Surface, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return s.Attach(all...)
}
