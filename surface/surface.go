// Package surface is the retained render tree the hero effects draw into.
//
// A Surface stands in for a DOM subtree: every visual node is a donburi
// entity, attaching creates it and detaching removes it. The host renders a
// surface by querying its world each frame.
package surface

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Surface is a container of visual nodes. A nil *Surface is valid and behaves
// like an unmounted one.
type Surface struct {
	name   string
	world  donburi.World
	width  float64
	height float64

	mounted bool
}

// New creates a mounted surface of the given viewport size
func New(name string, width, height float64) *Surface {
	return &Surface{
		name:    name,
		world:   donburi.NewWorld(),
		width:   width,
		height:  height,
		mounted: true,
	}
}

// Name returns the surface name used in logs
func (s *Surface) Name() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// World exposes the backing world to renderers and queries
func (s *Surface) World() donburi.World {
	if s == nil {
		return nil
	}
	return s.world
}

// Mounted reports whether nodes may be attached
func (s *Surface) Mounted() bool {
	return s != nil && s.mounted
}

// Size returns the viewport size in pixels
func (s *Surface) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	return s.width, s.height
}

// Resize updates the viewport size. Existing nodes keep their positions.
func (s *Surface) Resize(width, height float64) {
	if s == nil {
		return
	}
	s.width, s.height = width, height
}

// Attach creates a node with the given components. It returns nil when the
// surface is absent or unmounted.
func (s *Surface) Attach(cs ...donburi.IComponentType) *donburi.Entry {
	if !s.Mounted() {
		return nil
	}
	return s.world.Entry(s.world.Create(cs...))
}

// Entry resolves a node id. It returns nil if the node is no longer attached.
func (s *Surface) Entry(id donburi.Entity) *donburi.Entry {
	if s == nil || !s.world.Valid(id) {
		return nil
	}
	return s.world.Entry(id)
}

// Remove detaches the node with the given id. It reports false if the node
// was already gone. Removing is allowed after Unmount so in-flight nodes can
// still clean up.
func (s *Surface) Remove(id donburi.Entity) bool {
	if s == nil || !s.world.Valid(id) {
		return false
	}
	s.world.Remove(id)
	return true
}

// Len returns the number of attached nodes
func (s *Surface) Len() int {
	if s == nil {
		return 0
	}
	return s.world.Len()
}

// Count returns the number of attached nodes carrying every given component
func (s *Surface) Count(cs ...donburi.IComponentType) int {
	if s == nil {
		return 0
	}
	return donburi.NewQuery(filter.Contains(cs...)).Count(s.world)
}

// Unmount stops the surface from accepting new nodes. Nodes already attached
// stay until their owners detach them.
func (s *Surface) Unmount() {
	if s == nil {
		return
	}
	s.mounted = false
}

// Remount accepts nodes again after Unmount
func (s *Surface) Remount() {
	if s == nil {
		return
	}
	s.mounted = true
}
