package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionToggleMount
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// KeyScrollStep is the number of pixels scrolled per frame while a scroll action is held
	KeyScrollStep float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		KeyScrollStep:  10,
		Bindings: map[ActionID]InputBinding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionTop: {
				Keys: []ebiten.Key{ebiten.KeyHome},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleMount: {
				Keys: []ebiten.Key{ebiten.KeyM},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
		},
	}
}
