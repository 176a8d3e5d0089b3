package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/junglesiege/components"
	"github.com/automoto/junglesiege/systems"
	"github.com/automoto/junglesiege/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the results of a finished session
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *Settings
	results      components.ResultsData
	resultsUI    *ui.ResultsUI
	next         interface{}
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, settings *Settings, results components.ResultsData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, settings: settings, results: results}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.resultsUI.Update()

	// Scene changes are applied after the UI finished its own update
	if gs.next != nil {
		gs.sceneChanger.ChangeScene(gs.next)
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.resultsUI.UI.Draw(screen)
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	retry := func() { gs.next = NewGameScene(gs.sceneChanger, gs.settings) }
	menu := func() { gs.next = NewMenuScene(gs.sceneChanger, gs.settings) }
	gs.resultsUI = ui.NewResultsUI(gs.results, retry, menu)

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(retry, menu))

	systems.PlayMusic(gs.ecs, cfg.Sound.MenuMusic)
}
