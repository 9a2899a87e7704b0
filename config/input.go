package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionBack
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
	// Taps longer than this are treated as drags, not taps
	MaxTapFrames int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MaxTapFrames: 15,
		Bindings: map[ActionID]InputBinding{
			ActionP1Up: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionP1Down: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionP2Up: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionP2Down: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace, ebiten.KeyP},
				// B / Circle or Start
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
