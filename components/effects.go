package components

import (
	"image/color"

	"github.com/automoto/scrollfx/anim"
	"github.com/yohamta/donburi"
)

// ParticleData is the visual state of one transient node
type ParticleData struct {
	anim.Frame

	Duration float64 // seconds
	Radius   float64 // pixels at scale 1
	Tint     color.RGBA

	// Optional drift target
	HasDrift       bool
	DriftX, DriftY float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// Motion drives a node's Particle frame over time
var Motion = donburi.NewComponentType[anim.Motion]()

// OwnerData records which emitter run created a node
type OwnerData struct {
	Run uint64
}

var Owner = donburi.NewComponentType[OwnerData]()

// SymbolData is a text glyph node
type SymbolData struct {
	Glyph string
}

var Symbol = donburi.NewComponentType[SymbolData]()

// PulseData tracks the loop count of a repeating node
type PulseData struct {
	Iteration int
	Repeat    int // -1 = infinite
}

var Pulse = donburi.NewComponentType[PulseData]()
