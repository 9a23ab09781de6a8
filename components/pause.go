package components

import "github.com/yohamta/donburi"

// PauseData freezes the hero effects while the window is unfocused
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
