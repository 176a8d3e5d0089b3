package factory

import (
	"math/rand"

	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionOptions configures a new game session.
type SessionOptions struct {
	Seed   int64
	Roster []cfg.BossDef
	Width  float64
	Height float64
}

// DefaultSessionOptions uses the configured screen and the loaded roster.
func DefaultSessionOptions(seed int64) SessionOptions {
	return SessionOptions{
		Seed:   seed,
		Roster: cfg.Roster,
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}
}

// CreateSession creates the state store singleton. The session starts
// inactive at round 0; StartGame activates it.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)

	trigger := 0
	if len(opts.Roster) > 0 {
		trigger = opts.Roster[0].TriggerKills
	}

	components.Session.SetValue(entry, components.SessionData{
		Rand:        rand.New(rand.NewSource(opts.Seed)),
		Width:       opts.Width,
		Height:      opts.Height,
		Health:      cfg.Tank.StartHealth,
		Ammo:        cfg.Tank.StartAmmo,
		Roster:      opts.Roster,
		BossTrigger: trigger,
	})
	components.Round.SetValue(entry, components.RoundData{Phase: cfg.PhaseSpawning})
	return entry
}

// CreateWorld builds the space, session and tank for one game.
func CreateWorld(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	CreateSpace(ecs, int(opts.Width), int(opts.Height), 32, 32)
	entry := CreateSession(ecs, opts)
	CreateTank(ecs)
	return entry
}
