package reveal

import "fmt"

// Phase is a stage of the heading reveal timeline
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSliceIn
	PhaseSliceOut
	PhaseHighlight
	PhaseSettle
)

// NumPhases is the number of timeline phases
const NumPhases = 5

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSliceIn:
		return "slice-in"
	case PhaseSliceOut:
		return "slice-out"
	case PhaseHighlight:
		return "highlight"
	case PhaseSettle:
		return "settle"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Slicing reports whether the blade is passing over the heading
func (p Phase) Slicing() bool {
	return p == PhaseSliceIn || p == PhaseSliceOut
}

// Clip holds the x coordinates, in percent of the heading width, of the
// four-point clip polygon: top-left, top-right, bottom-right, bottom-left.
// The y coordinates are fixed at 0%, 0%, 100%, 100%.
type Clip [4]float64

var (
	// ClipFull shows the whole heading
	ClipFull = Clip{0, 100, 100, 0}
	// ClipClosed is the zero-width sliver at the left edge
	ClipClosed = Clip{0, 0, 0, 0}
	// ClipOpened is the full rectangle again, entered from the opposite edge
	ClipOpened = Clip{100, 0, 0, 100}
)

var clipY = [4]float64{0, 0, 100, 100}

// Lerp interpolates every x coordinate toward to by t
func (c Clip) Lerp(to Clip, t float64) Clip {
	var out Clip
	for i := range c {
		out[i] = c[i] + (to[i]-c[i])*t
	}
	return out
}

// Span returns the visible horizontal range in percent
func (c Clip) Span() (lo, hi float64) {
	lo, hi = c[0], c[0]
	for _, x := range c[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// Width returns the visible width in percent
func (c Clip) Width() float64 {
	lo, hi := c.Span()
	return hi - lo
}

// String renders the polygon in CSS clip-path notation
func (c Clip) String() string {
	return fmt.Sprintf("polygon(%s%% %s%%, %s%% %s%%, %s%% %s%%, %s%% %s%%)",
		pct(c[0]), pct(clipY[0]), pct(c[1]), pct(clipY[1]),
		pct(c[2]), pct(clipY[2]), pct(c[3]), pct(clipY[3]))
}

func pct(v float64) string {
	return fmt.Sprintf("%g", float64(int64(v*100+0.5))/100)
}
