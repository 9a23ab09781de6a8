package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/scroll"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// headingPad leaves room around the heading text for the glow halo
const headingPad = 24

var (
	drawOp = &ebiten.DrawImageOptions{}

	// offscreen heading buffers, reallocated when the box size changes
	headingText *ebiten.Image
	headingGlow *ebiten.Image
)

// HeadingBox centers text in the viewport and returns its box
func HeadingBox(s string, vp scroll.Viewport) components.Rect {
	b := text.BoundString(fonts.Heading.Get(), s)
	w, h := float64(b.Dx()), float64(b.Dy())
	return components.Rect{
		X: (vp.Width - w) / 2,
		Y: (vp.Height - h) / 2,
		W: w,
		H: h,
	}
}

// fade scales a straight-alpha color by opacity and returns it premultiplied
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return color.RGBA{}
	}
	if opacity > 1 {
		opacity = 1
	}
	a := float64(c.A) / 255 * opacity
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}

// DrawBackdrop fills the section and draws the page scroll indicator
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sand)

	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	width, height := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	maxOffset := h.MaxOffset()
	if maxOffset <= 0 {
		return
	}
	thumb := height / float32(cfg.C.PageHeight)
	y := float32(h.Offset/maxOffset) * (height - thumb)
	vector.FillRect(screen, width-6, 0, 6, height, color.RGBA{0, 0, 0, 20}, false)
	vector.FillRect(screen, width-6, y, 6, thumb, cfg.DebugText, false)
}

// DrawPulse renders the eagle vision ring
func DrawPulse(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	tags.EagleEye.Each(h.Section.World(), func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		r := float32(p.Radius * p.Scale)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r, 6, fade(p.Tint, p.Opacity*0.5), true)
	})
}

// DrawSand renders falling grains in the section
func DrawSand(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	tags.Sand.Each(h.Section.World(), func(e *donburi.Entry) {
		drawDot(screen, components.Particle.Get(e))
	})
}

// DrawBlades renders blade sparks from the page root
func DrawBlades(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	tags.Blade.Each(h.Page.World(), func(e *donburi.Entry) {
		drawDot(screen, components.Particle.Get(e))
	})
}

func drawDot(screen *ebiten.Image, p *components.ParticleData) {
	r := float32(p.Radius * p.Scale)
	if r <= 0 || p.Opacity <= 0 {
		return
	}
	vector.FillCircle(screen, float32(p.X), float32(p.Y), r, fade(p.Tint, p.Opacity), true)
}

// DrawGlyphs renders the hieroglyph symbols. Glyphs the font cannot draw
// are shown as small cartouches.
func DrawGlyphs(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	face := fonts.Glyph.Get()
	tags.Hieroglyph.Each(h.Section.World(), func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Opacity <= 0 || p.Scale <= 0 {
			return
		}
		c := fade(p.Tint, p.Opacity)
		glyph := components.Symbol.Get(e).Glyph

		r := []rune(glyph)
		if len(r) > 0 && fonts.Glyph.Covers(r[0]) {
			text.Draw(screen, glyph, face, int(p.X), int(p.Y), c)
			return
		}
		size := float32(20 * p.Scale)
		vector.StrokeRect(screen, float32(p.X)-size/2, float32(p.Y)-size, size, size*1.6, 2, c, true)
	})
}

// DrawHeading renders the heading clipped to its visible span with its glow
func DrawHeading(ecs *ecs.ECS, screen *ebiten.Image) {
	h, ok := GetHero(ecs)
	if !ok {
		return
	}
	entry, ok := tags.Heading.First(h.Section.World())
	if !ok {
		return
	}
	hd := components.Heading.Get(entry)
	if hd.Box.Empty() {
		return
	}
	st := hd.State

	w := int(math.Ceil(hd.Box.W)) + headingPad*2
	ht := int(math.Ceil(hd.Box.H)) + headingPad*2
	if headingText == nil || headingText.Bounds().Dx() != w || headingText.Bounds().Dy() != ht {
		headingText = ebiten.NewImage(w, ht)
		headingGlow = ebiten.NewImage(w, ht)
	}
	headingText.Clear()

	face := fonts.Heading.Get()
	b := text.BoundString(face, hd.Text)
	text.Draw(headingText, hd.Text, face, headingPad-b.Min.X, headingPad-b.Min.Y, st.Color)

	src := headingText
	if st.Glow > 0 && assets.GlowShader != nil {
		headingGlow.Clear()
		gc := st.GlowColor
		a := float32(gc.A) / 255
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = headingText
		op.Uniforms = map[string]any{
			"Radius": float32(st.GlowRadius),
			"Glow":   []float32{float32(gc.R) / 255 * a, float32(gc.G) / 255 * a, float32(gc.B) / 255 * a, a},
		}
		headingGlow.DrawRectShader(w, ht, assets.GlowShader, op)
		src = headingGlow
	}

	lo, hi := st.Visible()
	x0 := headingPad + int(lo*hd.Box.W)
	x1 := headingPad + int(math.Ceil(hi*hd.Box.W))
	if st.Glow > 0 {
		// the halo extends past the text once it is fully open
		x0, x1 = 0, w
	}
	if x1 <= x0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(hd.Box.X-headingPad+float64(x0), hd.Box.Y-headingPad)
	screen.DrawImage(src.SubImage(image.Rect(x0, 0, x1, ht)).(*ebiten.Image), drawOp)
}
