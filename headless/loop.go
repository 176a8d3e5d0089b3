// Package headless runs game sessions without a window or audio device.
package headless

import (
	"context"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Summary is the state of a session when the loop stopped.
type Summary struct {
	Ticks    int
	Finished bool
	Phase    cfg.PhaseID
	Results  components.ResultsData
	Health   int
	Ammo     int
	Kills    int
}

// GameLoop drives one autopilot session tick by tick. A TickRate of 0 runs
// as fast as possible; otherwise ticks are paced like the windowed game.
type GameLoop struct {
	ecs      *ecs.ECS
	store    systems.ScoreStore
	tickRate int
	ticks    int
}

func NewGameLoop(opts factory.SessionOptions, store systems.ScoreStore, tickRate int) *GameLoop {
	e := ecs.NewECS(donburi.NewWorld())
	systems.AddGameSystems(e, systems.UpdateAutopilot, systems.DrainSFX)

	factory.CreateWorld(e, opts)
	systems.EnableAutopilot(e)
	systems.StartGame(e)

	return &GameLoop{ecs: e, store: store, tickRate: tickRate}
}

// ECS exposes the loop's world for inspection.
func (g *GameLoop) ECS() *ecs.ECS {
	return g.ecs
}

// Run ticks until the session finishes, maxTicks have run or ctx is done.
func (g *GameLoop) Run(ctx context.Context, maxTicks int) Summary {
	log.Info("Headless loop started", "tickRate", g.tickRate, "maxTicks", maxTicks)

	var pace <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	for g.ticks < maxTicks && !systems.IsFinished(g.ecs) {
		if pace != nil {
			select {
			case <-ctx.Done():
				log.Info("Headless loop stopped", "ticks", g.ticks, "err", ctx.Err())
				return g.summary()
			case <-pace:
			}
		} else if ctx.Err() != nil {
			log.Info("Headless loop stopped", "ticks", g.ticks, "err", ctx.Err())
			return g.summary()
		}
		g.tick()
	}
	return g.summary()
}

func (g *GameLoop) tick() {
	g.ecs.Update()
	g.ticks++
}

func (g *GameLoop) summary() Summary {
	s := systems.GetSession(g.ecs)
	sum := Summary{
		Ticks:    g.ticks,
		Finished: systems.IsFinished(g.ecs),
		Phase:    systems.Phase(g.ecs),
		Health:   s.Health,
		Ammo:     s.Ammo,
		Kills:    s.Kills,
	}
	if sum.Finished {
		sum.Results = systems.FinalizeResults(g.ecs, g.store)
	}
	return sum
}
