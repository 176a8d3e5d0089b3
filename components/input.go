package components

import (
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
	InputAutopilot
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer target. PointerActive is set while the tank should
// follow the pointer instead of the movement keys.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	PointerX      float64
	PointerY      float64
	PointerActive bool
}

var Input = donburi.NewComponentType[InputData]()
