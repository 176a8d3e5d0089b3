package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/junglesiege/assets"
	"github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/fonts"
	"github.com/automoto/junglesiege/scenes"
	"github.com/automoto/junglesiege/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(settings *scenes.Settings) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu || config.Debug.Demo {
		g.scene = scenes.NewGameScene(g, settings)
	} else {
		g.scene = scenes.NewMenuScene(g, settings)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "Random seed (0 = new seed every game)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start a game immediately")
	flag.BoolVar(&config.Debug.Demo, "demo", false, "Let the autopilot drive the tank")
	flag.BoolVar(&config.Debug.Verbose, "debug", false, "Enable debug logging")
	flag.BoolVar(&config.Debug.Hitboxes, "hitboxes", false, "Draw collision boxes and round state")
	flag.StringVar(&config.Debug.RosterPath, "roster", "", "Boss roster YAML file (default: built-in roster)")
	flag.StringVar(&config.Debug.AssetsDir, "assets", "", "Directory with images/ and audio/ (default: placeholder shapes, no sound)")
	flag.Parse()
}

func main() {
	parseFlags()

	if config.Debug.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if config.Debug.RosterPath != "" {
		roster, err := config.LoadRosterFile(config.Debug.RosterPath)
		if err != nil {
			log.Warn("Could not load roster, using the built-in one", "path", config.Debug.RosterPath, "err", err)
		} else {
			config.Roster = roster
		}
	}

	if config.Debug.AssetsDir != "" {
		assets.SetSource(os.DirFS(config.Debug.AssetsDir))
	}
	if err := assets.LoadShaders(); err != nil {
		log.Fatal("Failed to load shaders", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence; the game runs without a best score if it fails
	store, err := systems.InitPersistence()
	if err != nil {
		log.Warn("Could not initialize persistence", "err", err)
		store = nil
	}

	settings := &scenes.Settings{
		Store: store,
		Seed:  config.Debug.Seed,
		Demo:  config.Debug.Demo,
	}
	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal("Game exited with error", "err", err)
	}
}
