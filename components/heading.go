package components

import (
	"github.com/automoto/scrollfx/reveal"
	"github.com/yohamta/donburi"
)

// Rect is a screen-space box in pixels
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the box has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// HeadingData is the revealed heading node. State is written by the effects
// controller only when it changes.
type HeadingData struct {
	Text    string
	Box     Rect
	State   reveal.State
	Version uint64 // bumped on every state write
}

var Heading = donburi.NewComponentType[HeadingData]()
