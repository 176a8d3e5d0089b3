package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound drives the progression state machine once per tick. Defeat is
// checked first; the boss trigger wins over a wave clear.
func UpdateRound(e *ecs.ECS) {
	s := GetSession(e)
	if s == nil || !s.Active {
		return
	}
	if checkDefeat(e) {
		return
	}

	r := getRound(e)
	switch r.Phase {
	case cfg.PhaseSpawning:
		if bossDue(s) {
			AnnounceBoss(e)
			return
		}
		if len(r.Queue) == 0 && count(e, components.Zombie) == 0 {
			setPhase(e, cfg.PhaseWaveClear)
		}

	case cfg.PhaseWaveClear:
		if bossDue(s) {
			AnnounceBoss(e)
			return
		}
		if s.Elapsed(r.PhaseSince) >= cfg.Round.WaveClearDelay {
			CompleteWave(e)
		}

	case cfg.PhaseBossAnnounced:
		if updateIntro(e) {
			StartBossFight(e)
		}

	case cfg.PhaseBossDefeated:
		AdvanceRound(e)
	}
}

// CompleteWave ends a cleared round: Victory after the last round,
// otherwise the next round begins.
func CompleteWave(e *ecs.ECS) {
	s := getSession(e)
	if s.Round >= cfg.Round.MaxRounds {
		log.Info("Final round cleared", "round", s.Round)
		setPhase(e, cfg.PhaseVictory)
		PlaySFX(e, cfg.SoundVictory)
		return
	}
	AdvanceRound(e)
}

// checkDefeat ends the game when the tank is destroyed or when it has no
// ammo left and no bullet still in flight.
func checkDefeat(e *ecs.ECS) bool {
	s := getSession(e)
	switch {
	case s.Health <= 0:
		log.Info("Tank destroyed", "round", s.Round, "score", s.Score)
	case s.Ammo <= 0 && count(e, tags.Bullet) == 0:
		log.Info("Out of ammo", "round", s.Round, "score", s.Score)
	default:
		return false
	}
	setPhase(e, cfg.PhaseDefeat)
	ResetNapalm(e)
	PlaySFX(e, cfg.SoundGameOver)
	return true
}
