package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateTank in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.LastInputMethod == components.InputAutopilot {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	var keyboardUsed, mouseUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}
	if analogUp {
		input.Current[cfg.ActionMoveUp] = true
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
	}
	if analogDown {
		input.Current[cfg.ActionMoveDown] = true
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
	}

	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx), float64(cy)
	if px != input.PointerX || py != input.PointerY {
		mouseUsed = true
		input.PointerActive = true
	}
	input.PointerX, input.PointerY = px, py

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
