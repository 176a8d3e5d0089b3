package systems

import (
	"fmt"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system that calls onStart or onExit
// when the matching option is chosen.
func NewUpdateMenu(onStart, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionFire).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				FadeOutMusic(e)
				onStart()
			case components.MainMenuExit:
				onExit()
			}
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	text.Draw(screen, title, titleFont, centeredX(titleFont, title, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if menu.BestScore > 0 {
		best := fmt.Sprintf("BEST %d", menu.BestScore)
		bodyFont := fonts.Body.Get()
		text.Draw(screen, best, bodyFont, centeredX(bodyFont, best, width), int(cfg.Menu.TitleY)+48, cfg.Menu.TextColorSelected)
	}

	menuFont := fonts.Bold.Get()
	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		text.Draw(screen, label, menuFont, centeredX(menuFont, label, width), int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centeredX(hintFont, hint, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	idx := int(option)
	if idx >= 0 && idx < len(cfg.Menu.MenuOptions) {
		return cfg.Menu.MenuOptions[idx]
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuExit,
			},
		})
	}
	return components.Menu.Get(entry)
}
