package config

import "image/color"

// EaseID names an easing curve using the timeline vocabulary of the page
// ("power2.out", "power1.inOut", "none", ...). See anim.Ease for the mapping.
type EaseID string

const (
	EaseNone        EaseID = "none"
	EasePower1Out   EaseID = "power1.out"
	EasePower2Out   EaseID = "power2.out"
	EasePower2InOut EaseID = "power2.inOut"
)

// ScrollConfig controls how scroll offset is turned into progress
type ScrollConfig struct {
	// VirtualDistance is the pinned scroll length as a multiple of the viewport height
	VirtualDistance float64 `env:"VIRTUAL_DISTANCE"`
	// ScrubLag is the catch-up time in seconds (0 = apply immediately)
	ScrubLag float64 `env:"SCRUB_LAG"`
}

// RevealConfig contains the heading reveal timeline configuration
type RevealConfig struct {
	// Weights are the relative lengths of idle, slice-in, slice-out, highlight, settle
	Weights []float64 `env:"WEIGHTS" envSeparator:","`

	SliceInEase   EaseID `env:"SLICE_IN_EASE"`
	SliceOutEase  EaseID `env:"SLICE_OUT_EASE"`
	HighlightEase EaseID `env:"HIGHLIGHT_EASE"`

	BaseColor   string `env:"BASE_COLOR"`
	AccentColor string `env:"ACCENT_COLOR"`
	GlowRadius  float64
	GlowAlpha   float64
}

// BladeConfig contains blade spark configuration
type BladeConfig struct {
	MaxActive   int `env:"MAX_ACTIVE"` // population cap on the page root
	MinDuration float64
	MaxDuration float64
	MinScale    float64
	MaxScale    float64
	DriftX      float64 // total horizontal spread, centered on the spawn point
	RiseMin     float64 // pixels moved upward, lower bound
	RiseMax     float64
	Radius      float64
	Color       string
	Ease        EaseID
}

// SandConfig contains falling sand configuration
type SandConfig struct {
	Count        int `env:"COUNT"`
	MinDuration  float64
	MaxDuration  float64
	DriftX       float64
	StartOpacity float64
	MinScale     float64
	MaxScale     float64
	Margin       float64 // pixels above and below the viewport
	Radius       float64
	Ease         EaseID
}

// GlyphConfig contains hieroglyph burst configuration
type GlyphConfig struct {
	Count       int `env:"COUNT"`
	Symbols     []string
	Stagger     float64 // seconds between consecutive symbols
	Duration    float64
	RestOpacity float64
	Color       string
	Ease        EaseID
}

// PulseConfig contains eagle vision pulse configuration
type PulseConfig struct {
	FromScale   float64
	ToScale     float64
	FromOpacity float64
	ToOpacity   float64
	Duration    float64
	Repeat      int `env:"REPEAT"` // -1 = infinite
	Color       string
	Ease        EaseID
}

// Effects bundles everything one hero effects layer needs. Each controller
// gets its own copy so instances never share mutable state.
type Effects struct {
	Seed int64 `env:"SEED"`

	Scroll ScrollConfig `envPrefix:"SCROLL_"`
	Reveal RevealConfig `envPrefix:"REVEAL_"`
	Blade  BladeConfig  `envPrefix:"BLADE_"`
	Sand   SandConfig   `envPrefix:"SAND_"`
	Glyphs GlyphConfig  `envPrefix:"GLYPHS_"`
	Pulse  PulseConfig  `envPrefix:"PULSE_"`
}

// Config holds general window configuration
type Config struct {
	Width  int    `env:"WIDTH"`
	Height int    `env:"HEIGHT"`
	Title  string `env:"TITLE"`

	// PageHeight is the scrollable document height as a multiple of the viewport
	PageHeight float64 `env:"PAGE_HEIGHT"`
	// SectionTop is the hero section's document offset in pixels
	SectionTop float64 `env:"SECTION_TOP"`
	// WheelStep is the number of pixels scrolled per wheel notch
	WheelStep float64 `env:"WHEEL_STEP"`
}

// Global configuration instances
var C *Config
var FX Effects

// Debug contains command-line toggles for the demo
var Debug DebugConfig

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowState bool // draw progress and phase in the corner
}

// PageTimelineWeights are the segment durations of the landing page
// timeline: 0.5s pause, 1s slice in, 1s slice out, 0.5s highlight, 0.5s pause.
var PageTimelineWeights = []float64{0.5, 1, 1, 0.5, 0.5}

// HieroglyphSymbols is the glyph alphabet the burst draws from
var HieroglyphSymbols = []string{"𓂀", "𓃭", "𓅓", "𓆣", "𓇯", "𓈖", "𓉔", "𓊖"}

// Shared RGBA color constants
var (
	Sand      = color.RGBA{R: 0xF8, G: 0xF4, B: 0xE1, A: 255}
	Gold      = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 255}
	Umber     = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 255}
	Royal     = color.RGBA{R: 0x3B, G: 0x59, B: 0x98, A: 255}
	DebugText = color.RGBA{R: 0x3B, G: 0x59, B: 0x98, A: 200}
)

// DefaultEffects returns a fresh copy of the default effects configuration
func DefaultEffects() Effects {
	return Effects{
		Seed: 1,
		Scroll: ScrollConfig{
			VirtualDistance: 2.0,
			ScrubLag:        0,
		},
		Reveal: RevealConfig{
			Weights:       []float64{1, 1, 1, 1, 1},
			SliceInEase:   EasePower2InOut,
			SliceOutEase:  EasePower2Out,
			HighlightEase: EasePower1Out,
			BaseColor:     "#3B5998",
			AccentColor:   "#FFD700",
			GlowRadius:    10,
			GlowAlpha:     0.5,
		},
		Blade: BladeConfig{
			MaxActive:   64,
			MinDuration: 0.5,
			MaxDuration: 1.5,
			MinScale:    0.5,
			MaxScale:    1.0,
			DriftX:      100,
			RiseMin:     50,
			RiseMax:     100,
			Radius:      2,
			Color:       "#FFD700",
			Ease:        EasePower2Out,
		},
		Sand: SandConfig{
			Count:        20,
			MinDuration:  3,
			MaxDuration:  5,
			DriftX:       200,
			StartOpacity: 0.8,
			MinScale:     0.5,
			MaxScale:     1.0,
			Margin:       20,
			Radius:       1,
			Ease:         EaseNone,
		},
		Glyphs: GlyphConfig{
			Count:       20,
			Symbols:     append([]string(nil), HieroglyphSymbols...),
			Stagger:     0.2,
			Duration:    1,
			RestOpacity: 0.3,
			Color:       "#FFD700",
			Ease:        EasePower2Out,
		},
		Pulse: PulseConfig{
			FromScale:   1,
			ToScale:     1.5,
			FromOpacity: 1,
			ToOpacity:   0,
			Duration:    2,
			Repeat:      -1,
			Color:       "#FFD700",
			Ease:        EasePower1Out,
		},
	}
}

func init() {
	C = &Config{
		Width:      960,
		Height:     540,
		Title:      "Hero Effects",
		PageHeight: 5,
		SectionTop: 0,
		WheelStep:  40,
	}

	FX = DefaultEffects()
}
