package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/junglesiege/assets"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one session from the first wave to Victory or Defeat.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *Settings
	once         sync.Once
}

func NewGameScene(sc SceneChanger, settings *Settings) *GameScene {
	return &GameScene{sceneChanger: sc, settings: settings}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.IsFinished(gs.ecs) {
		results := systems.FinalizeResults(gs.ecs, gs.settings.Store)
		systems.FadeOutMusic(gs.ecs)
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.settings, results))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	drive := ecs.System(systems.UpdateInput)
	if gs.settings.Demo {
		drive = systems.UpdateAutopilot
	}
	systems.AddGameSystems(gs.ecs, drive, systems.UpdateAudio)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawField)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawIntro)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawCaption)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	seed := gs.settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("New game", "seed", seed, "demo", gs.settings.Demo, "sprites", assets.Source() != nil)

	factory.CreateWorld(gs.ecs, factory.DefaultSessionOptions(seed))
	if gs.settings.Demo {
		systems.EnableAutopilot(gs.ecs)
	}
	systems.StartGame(gs.ecs)

	systems.PlayMusic(gs.ecs, cfg.Sound.BattleMusic)
}
