package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionNapalm
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func bind(keys []ebiten.Key, pad ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, StandardGamepadButtons: pad}
}

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func init() {
	fire := bind(keys(ebiten.KeySpace, ebiten.KeyZ), ebiten.StandardGamepadButtonRightBottom)
	fire.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft}

	napalm := bind(keys(ebiten.KeyN), ebiten.StandardGamepadButtonRightTop)
	napalm.MouseButtons = []ebiten.MouseButton{ebiten.MouseButtonRight}

	up := bind(keys(ebiten.KeyUp, ebiten.KeyW), ebiten.StandardGamepadButtonLeftTop)
	down := bind(keys(ebiten.KeyDown, ebiten.KeyS), ebiten.StandardGamepadButtonLeftBottom)

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   bind(keys(ebiten.KeyLeft, ebiten.KeyA), ebiten.StandardGamepadButtonLeftLeft),
			ActionMoveRight:  bind(keys(ebiten.KeyRight, ebiten.KeyD), ebiten.StandardGamepadButtonLeftRight),
			ActionMoveUp:     up,
			ActionMoveDown:   down,
			ActionFire:       fire,
			ActionNapalm:     napalm,
			ActionPause:      bind(keys(ebiten.KeyEscape, ebiten.KeyP), ebiten.StandardGamepadButtonCenterRight),
			ActionMenuUp:     up,
			ActionMenuDown:   down,
			ActionMenuSelect: bind(keys(ebiten.KeyEnter, ebiten.KeySpace), ebiten.StandardGamepadButtonRightBottom),
		},
	}
}
