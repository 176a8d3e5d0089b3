package systems

import (
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi/ecs"
)

// gameOverInputDelay keeps a fire button still held from the last fight
// from skipping the results.
const gameOverInputDelay = 30

// NewUpdateGameOver creates the keyboard/gamepad shortcuts for the results
// screen: select or fire retries, pause returns to the menu.
func NewUpdateGameOver(onRetry, onMenu func()) ecs.System {
	ticks := 0
	return func(e *ecs.ECS) {
		if ticks < gameOverInputDelay {
			ticks++
			return
		}
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed, GetAction(input, cfg.ActionFire).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			onRetry()
		case GetAction(input, cfg.ActionPause).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			onMenu()
		}
	}
}
