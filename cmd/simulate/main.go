// Command simulate plays sessions with the autopilot and no window, logging
// phase changes and the final stats.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/headless"
	"github.com/automoto/junglesiege/systems"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
)

func main() {
	seed := flag.Int64("seed", 1, "Random seed for the session")
	ticks := flag.Int("ticks", 20000, "Maximum ticks to simulate")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	rosterPath := flag.String("roster", "", "Boss roster YAML file (default: built-in roster)")
	save := flag.Bool("save", false, "Record the final score as a best score")
	debug := flag.Bool("debug", false, "Log spawns, drops and kills")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := factory.DefaultSessionOptions(*seed)
	if *rosterPath != "" {
		roster, err := cfg.LoadRosterFile(*rosterPath)
		if err != nil {
			log.Fatal("Failed to load roster", "err", err)
		}
		opts.Roster = roster
	}

	var store systems.ScoreStore
	if *save {
		s, err := systems.InitPersistence()
		if err != nil {
			log.Warn("Could not initialize persistence", "err", err)
		} else {
			store = s
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := headless.NewGameLoop(opts, store, *tickRate).Run(ctx, *ticks)

	log.Info("Simulation done",
		"seed", *seed,
		"ticks", sum.Ticks,
		"finished", sum.Finished,
		"phase", sum.Phase,
		"health", sum.Health,
		"ammo", sum.Ammo,
		"kills", sum.Kills,
	)
	if sum.Finished {
		log.Info("Results", "title", sum.Results.Title, "score", sum.Results.Score,
			"round", sum.Results.Round, "bosses", sum.Results.BossesDefeated, "best", sum.Results.Best)
	}
}
