package systems

import (
	"math"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bossDue reports whether enough kills were made to call in the next boss.
func bossDue(s *components.SessionData) bool {
	return s.BossTrigger <= 0 && !s.RosterExhausted()
}

// AnnounceBoss cancels the remaining wave and shows the next boss's intro.
func AnnounceBoss(e *ecs.ECS) {
	s := getSession(e)
	if s.RosterExhausted() {
		return
	}
	def := s.Roster[s.BossIndex]

	getRound(e).Queue = getRound(e).Queue[:0]
	factory.CreateIntro(e, def)
	setPhase(e, cfg.PhaseBossAnnounced)
	log.Info("Boss announced", "name", def.Name, "index", s.BossIndex)
	PlaySFX(e, cfg.SoundBossIntro)
}

// updateIntro types the intro line and reports whether the fight should
// start. The timeout guarantees progress even without a typewriter.
func updateIntro(e *ecs.ECS) bool {
	s := getSession(e)
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return true
	}
	intro := components.Intro.Get(entry)

	if s.Elapsed(intro.Started) >= cfg.Boss.IntroTimeout {
		return true
	}
	if intro.Typewriter == nil || s.Elapsed(intro.Started) < cfg.Boss.IntroPreDelay {
		return false
	}

	if !intro.TypingDone {
		typed, finished := intro.Typewriter.Update(float32(cfg.Tick.Seconds()))
		intro.Typed = int(typed)
		if finished {
			intro.Typed = len([]rune(intro.Line))
			intro.TypingDone = true
			intro.TypedAt = s.Now
		}
		return false
	}
	return s.Elapsed(intro.TypedAt) >= cfg.Boss.IntroHold
}

// StartBossFight removes the intro and spawns the announced boss.
func StartBossFight(e *ecs.ECS) *donburi.Entry {
	s := getSession(e)
	if entry, ok := components.Intro.First(e.World); ok {
		e.World.Remove(entry.Entity())
	}
	if s.RosterExhausted() {
		return nil
	}

	def := s.Roster[s.BossIndex]
	boss := factory.CreateBoss(e, s.BossIndex, def)
	if boss == nil {
		log.Warn("Boss has invalid geometry, skipping", "name", def.Name)
		nextBoss(e)
		return nil
	}
	setPhase(e, cfg.PhaseBossActive)
	return boss
}

// UpdateBoss steers the boss toward the tank and fires at it on a cooldown.
func UpdateBoss(e *ecs.ECS) {
	_, tankObj, ok := getTank(e)
	if !ok {
		return
	}
	s := getSession(e)
	px, py := tankObj.Center()

	for _, ent := range collect(e, components.Boss) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		b := components.Boss.Get(entry)
		if !b.Alive {
			continue
		}
		obj := components.Object.Get(entry)
		cx, cy := obj.Center()
		dx, dy := px-cx, py-cy
		dist := math.Max(1, math.Hypot(dx, dy))

		if dist > cfg.Boss.PursuitDeadZone {
			obj.X = clampFloat(obj.X+dx/dist*b.Def.Speed, 0, s.Width-obj.W)
			obj.Y = clampFloat(obj.Y+dy/dist*b.Def.Speed, cfg.Boss.MinY, bossMaxY(s, obj.H))
			obj.Update()
		}

		b.Cooldown--
		if b.Cooldown <= 0 {
			cx, cy = obj.Center()
			factory.CreateBossProjectile(e, cx, cy, px, py, b.Def.Projectile)
			b.Cooldown = cfg.Boss.Cooldown + s.Rand.Intn(cfg.Boss.CooldownJitter)
		}
	}
}

// bossMaxY keeps the boss above the HUD bar and out of the tank's lane.
func bossMaxY(s *components.SessionData, h float64) float64 {
	maxY := s.FieldBottom() - h - math.Floor(s.Height*cfg.Boss.LaneReserve)
	return math.Max(cfg.Boss.MinY, maxY)
}

func checkBossDefeated(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if components.Boss.Get(entry).Alive && components.Health.Get(entry).Current <= 0 {
		DefeatBoss(e, entry)
	}
}

// DefeatBoss removes the boss and moves on to the next roster entry, or
// ends the game when the roster is exhausted.
func DefeatBoss(e *ecs.ECS, entry *donburi.Entry) {
	s := getSession(e)
	b := components.Boss.Get(entry)
	b.Alive = false

	cx, cy := components.Object.Get(entry).Center()
	factory.CreateExplosion(e, cx, cy)
	name := b.Def.Name
	destroy(e, entry)

	ShakeScreen(e, cfg.ScreenShake.ExplosionIntensity, cfg.ScreenShake.ExplosionDuration)
	PlaySFX(e, cfg.SoundExplosion)
	log.Info("Boss defeated", "name", name, "bossIndex", s.BossIndex, "score", s.Score)
	nextBoss(e)
}

// nextBoss advances the roster. The index only ever grows and stops at the
// roster length, which is the final victory.
func nextBoss(e *ecs.ECS) {
	s := getSession(e)
	s.BossIndex++
	ResetNapalm(e)

	setPhase(e, cfg.PhaseBossDefeated)
	if s.RosterExhausted() {
		setPhase(e, cfg.PhaseVictory)
		PlaySFX(e, cfg.SoundVictory)
		return
	}
	s.BossTrigger = s.Roster[s.BossIndex].TriggerKills
}
