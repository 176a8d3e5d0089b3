package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

func getRound(e *ecs.ECS) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(e.World))
}

func getNapalm(e *ecs.ECS) *components.NapalmData {
	return components.Napalm.Get(components.Napalm.MustFirst(e.World))
}

// GetSession returns the session stats, or nil before a session exists.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// Phase returns the current progression phase.
func Phase(e *ecs.ECS) cfg.PhaseID {
	return getRound(e).Phase
}

// IsFinished reports whether the session reached Victory or Defeat.
func IsFinished(e *ecs.ECS) bool {
	if _, ok := components.Round.First(e.World); !ok {
		return false
	}
	return Phase(e).Terminal()
}

func setPhase(e *ecs.ECS, phase cfg.PhaseID) {
	r := getRound(e)
	if r.Phase == phase {
		return
	}
	s := getSession(e)
	log.Info("Phase changed", "from", r.Phase, "to", phase, "round", s.Round, "score", s.Score)
	r.Phase = phase
	r.PhaseSince = s.Now
	if phase.Terminal() {
		s.Active = false
		r.Queue = r.Queue[:0]
	}
}

// StartGame activates the session and schedules the first wave.
func StartGame(e *ecs.ECS) {
	s := getSession(e)
	s.Active = true
	log.Info("Game started", "bosses", len(s.Roster), "maxRounds", cfg.Round.MaxRounds)
	AdvanceRound(e)
}

// WithCombatChecks wraps a field system so it only runs while the session
// is live, unpaused and not frozen by a boss intro or a final outcome.
func WithCombatChecks(system ecs.System) ecs.System {
	return WithGameplayChecks(func(e *ecs.ECS) {
		s := GetSession(e)
		if s == nil || !s.Active || Phase(e).Frozen() {
			return
		}
		system(e)
	})
}

func getTank(e *ecs.ECS) (*donburi.Entry, *components.ObjectData, bool) {
	entry, ok := components.Tank.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Object.Get(entry), true
}

// UpdateClock advances simulated time by one tick.
func UpdateClock(e *ecs.ECS) {
	s := GetSession(e)
	if s == nil || !s.Active {
		return
	}
	s.Now += cfg.Tick
}
