package anim

import (
	"log"
	"strings"

	"github.com/automoto/scrollfx/config"
	"github.com/tanema/gween/ease"
)

// Easing curves keyed by the timeline vocabulary used in config.
// power1 = quad, power2 = cubic, power3 = quart, power4 = quint.
var easings = map[string]ease.TweenFunc{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,

	"sine.in":    ease.InSine,
	"sine.out":   ease.OutSine,
	"sine.inout": ease.InOutSine,
	"expo.in":    ease.InExpo,
	"expo.out":   ease.OutExpo,
	"expo.inout": ease.InOutExpo,
}

// Ease returns the tween function for id. Lookup is case-insensitive; an
// empty id is linear and an unknown id logs and falls back to linear.
func Ease(id config.EaseID) ease.TweenFunc {
	if id == "" {
		return ease.Linear
	}
	if fn, ok := easings[strings.ToLower(string(id))]; ok {
		return fn
	}
	log.Printf("[anim] unknown ease %q, using linear", id)
	return ease.Linear
}

// Unit evaluates fn at normalised time t in [0,1], returning 0..1 for
// curves that do not overshoot. t outside [0,1] is clamped.
func Unit(fn ease.TweenFunc, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}
