package emitters

import (
	"github.com/automoto/scrollfx/anim"
	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/surface"
)

const frame = 1.0 / 60

func newTestRuntime() *Runtime {
	return NewRuntime(anim.NewScheduler(), 42)
}

func newTestSurface() *surface.Surface {
	return surface.New("section", 960, 540)
}

func testConfig() config.Effects {
	return config.DefaultEffects()
}

// runFor ticks the scheduler for the given number of seconds, calling check
// after every frame when it is non-nil.
func runFor(rt *Runtime, seconds float64, check func()) {
	frames := int(seconds * 60)
	for i := 0; i < frames; i++ {
		rt.Sched.Tick(frame)
		if check != nil {
			check()
		}
	}
}
