package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Settings are the run-wide options every scene shares.
type Settings struct {
	Store systems.ScoreStore
	Seed  int64 // 0 picks a new seed per game
	Demo  bool
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *Settings
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, settings *Settings) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	onStart := func() {
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.settings))
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(onStart, ms.sceneChanger.Quit))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.GetOrCreateMenu(ms.ecs).BestScore = systems.LoadBestScore(ms.settings.Store)

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}
