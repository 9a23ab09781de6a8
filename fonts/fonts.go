package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Heading FontName = "heading"
	Glyph   FontName = "glyph"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f).face
}

// Covers reports whether the font has an outline for r
func (f FontName) Covers(r rune) bool {
	return getFont(f).ttf.Index(r) != 0
}

type loaded struct {
	ttf  *truetype.Font
	face font.Face
}

var (
	fonts = map[FontName]loaded{}
)

// LoadDefaults loads every face the hero page uses from the embedded Go font
func LoadDefaults() error {
	sizes := map[FontName]float64{
		Heading: 56,
		Glyph:   28,
		Small:   12,
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = loaded{
		ttf:  fontData,
		face: truetype.NewFace(fontData, &truetype.Options{Size: size}),
	}
	return nil
}

func getFont(name FontName) loaded {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
