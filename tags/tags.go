package tags

import "github.com/yohamta/donburi"

var (
	Heading    = donburi.NewTag().SetName("Heading")
	Blade      = donburi.NewTag().SetName("Blade")
	Sand       = donburi.NewTag().SetName("Sand")
	Hieroglyph = donburi.NewTag().SetName("Hieroglyph")
	EagleEye   = donburi.NewTag().SetName("EagleEye")
)
