package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WaveSize returns the number of zombies scheduled for a round.
func WaveSize(round int, rng *rand.Rand) int {
	rc := cfg.Round
	r := float64(round)
	n := int(math.Floor(rc.WavePerRound*r + rng.Float64()*rc.WaveJitterPerRound*r))
	if n < rc.MinWave {
		return rc.MinWave
	}
	return n
}

// SpawnInterval returns the delay between two consecutive spawns of a round.
func SpawnInterval(round int, rng *rand.Rand) time.Duration {
	rc := cfg.Round
	base := rc.BaseInterval - time.Duration(round)*rc.IntervalPerRound
	if base < rc.MinInterval {
		base = rc.MinInterval
	}
	return base + time.Duration(rng.Float64()*float64(rc.IntervalJitter))
}

func zombieSpeed(round int, rng *rand.Rand) float64 {
	rc := cfg.Round
	return rc.BaseSpeed + rc.SpeedPerRound*float64(round) + (rng.Float64()-rc.SpeedJitterBias)*rc.SpeedJitter
}

// StartRound queues the wave for a round and returns its size. Nothing is
// spawned here; UpdateSpawner drains the queue as events fall due.
func StartRound(e *ecs.ECS, round int) int {
	s := getSession(e)
	r := getRound(e)

	n := WaveSize(round, s.Rand)
	at := s.Now
	r.Queue = r.Queue[:0]
	for i := 0; i < n; i++ {
		if i > 0 {
			at += SpawnInterval(round, s.Rand)
		}
		r.Queue = append(r.Queue, components.SpawnEvent{At: at, Speed: zombieSpeed(round, s.Rand)})
	}

	log.Info("Round started", "round", round, "zombies", n, "lastSpawnAt", at)
	return n
}

// AdvanceRound moves to the next round and schedules its wave.
func AdvanceRound(e *ecs.ECS) {
	s := getSession(e)
	s.Round++
	s.ShieldUntil = 0
	setPhase(e, cfg.PhaseSpawning)
	StartRound(e, s.Round)
}

// UpdateSpawner spawns every queued zombie that is due. A stale schedule,
// left over from a finished game or interrupted by a boss, is dropped whole.
func UpdateSpawner(e *ecs.ECS) {
	r, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(r)
	if len(round.Queue) == 0 {
		return
	}

	s := getSession(e)
	if !s.Active || round.Phase != cfg.PhaseSpawning {
		log.Debug("Dropping spawn schedule", "pending", len(round.Queue), "phase", round.Phase, "active", s.Active)
		round.Queue = round.Queue[:0]
		return
	}

	due := 0
	for due < len(round.Queue) && round.Queue[due].At <= s.Now {
		SpawnZombie(e, round.Queue[due].Speed)
		due++
	}
	round.Queue = append(round.Queue[:0], round.Queue[due:]...)
}

// SpawnZombie places one zombie of a weighted random tier at a random x.
func SpawnZombie(e *ecs.ECS, speed float64) *donburi.Entry {
	s := getSession(e)
	tier := PickTier(s.Round, s.Rand)
	w := cfg.Zombies.Tiers[tier].Width
	x := s.Rand.Float64() * math.Max(0, s.Width-w)

	z := factory.CreateZombie(e, tier, x, speed)
	if z == nil {
		log.Warn("Discarded zombie with invalid geometry", "tier", tier, "x", x, "speed", speed)
		return nil
	}
	log.Debug("Zombie spawned", "tier", cfg.Zombies.Tiers[tier].Name, "x", x, "speed", speed)
	return z
}

// TierWeights returns the spawn weight of every tier for a round. Harder
// tiers gain weight faster as rounds go by.
func TierWeights(round int) []float64 {
	grown := float64(round - 1)
	if grown < 0 {
		grown = 0
	}
	weights := make([]float64, len(cfg.Zombies.Tiers))
	for i, t := range cfg.Zombies.Tiers {
		weights[i] = t.BaseWeight + grown*t.WeightGrowth
	}
	return weights
}

// PickTier draws a tier index using TierWeights.
func PickTier(round int, rng *rand.Rand) int {
	weights := TierWeights(round)
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := rng.Float64() * total
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
