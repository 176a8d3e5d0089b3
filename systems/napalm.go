package systems

import (
	"math"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// registerBossHit extends the boss-hit streak. Hits must land within
// HitWindow of each other; enough of them arm the air strike.
func registerBossHit(e *ecs.ECS) {
	s := getSession(e)
	n := getNapalm(e)

	if n.Streak > 0 && s.Elapsed(n.LastHit) > cfg.Napalm.HitWindow {
		n.Streak = 0
	}
	n.Streak++
	n.LastHit = s.Now

	if !n.Ready && n.Streak >= cfg.Napalm.HitsToArm {
		n.Ready = true
		factory.CreateCaption(e, "NAPALM READY [N]", cfg.Orange)
		log.Debug("Napalm armed", "streak", n.Streak)
	}
}

// TriggerNapalm launches the bomber if the strike is armed and no bomber is
// already flying. The bomber crosses from the right edge to the left.
func TriggerNapalm(e *ecs.ECS) bool {
	s := getSession(e)
	n := getNapalm(e)
	if !s.Active || !n.Ready || n.Flying {
		return false
	}

	nc := cfg.Napalm
	start := s.Width + nc.BomberWidth + nc.BomberEntryMargin
	n.Ready = false
	n.Streak = 0
	n.Flying = true
	n.BomberX = start
	n.BomberY = nc.BomberAltitude
	n.DropsLeft = nc.Drops
	n.NextDropX = start - nc.DropSpacing

	log.Info("Napalm strike called", "drops", n.DropsLeft)
	PlaySFX(e, cfg.SoundNapalm)
	return true
}

// ResetNapalm disarms the strike and clears any bomber and bombs in flight.
func ResetNapalm(e *ecs.ECS) {
	entry, ok := components.Napalm.First(e.World)
	if !ok {
		return
	}
	components.Napalm.SetValue(entry, components.NapalmData{})
	for _, ent := range collect(e, components.Bomb) {
		bomb, ok := live(e, ent)
		if !ok {
			continue
		}
		destroy(e, bomb)
	}
}

// UpdateNapalm flies the bomber, releases its bombs at fixed spacing and
// detonates bombs when they reach the ground.
func UpdateNapalm(e *ecs.ECS) {
	s := getSession(e)
	n := getNapalm(e)
	nc := cfg.Napalm

	if n.Flying {
		n.BomberX -= nc.BomberSpeed
		if n.DropsLeft > 0 && n.BomberX <= n.NextDropX {
			factory.CreateBomb(e, n.BomberX+nc.BomberWidth*0.5, n.BomberY+nc.BomberHeight*0.7)
			n.DropsLeft--
			n.NextDropX -= nc.DropSpacing
		}
		if n.BomberX+nc.BomberWidth < -40 {
			n.Flying = false
		}
	}

	ground := s.FieldBottom() - nc.GroundOffset
	for _, ent := range collect(e, components.Bomb) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		b := components.Bomb.Get(entry)
		obj := components.Object.Get(entry)
		b.VY += nc.BombGravity
		obj.Y += b.VY

		cx, cy := obj.Center()
		if cy >= ground {
			destroy(e, entry)
			explodeNapalm(e, cx, cy-10)
		}
	}
}

// explodeNapalm burns every zombie whose centre is inside the blast and
// scorches the boss if it is close enough. Napalm kills score but do not
// feed the combo, drops or the boss trigger.
func explodeNapalm(e *ecs.ECS, x, y float64) {
	s := getSession(e)
	nc := cfg.Napalm

	killed := 0
	for _, ent := range collect(e, components.Zombie) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		cx, cy := components.Object.Get(entry).Center()
		if math.Hypot(cx-x, cy-y) <= nc.Radius {
			destroy(e, entry)
			AddScore(s, nc.KillScore)
			killed++
		}
	}

	for _, ent := range collect(e, components.Boss) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		if !components.Boss.Get(entry).Alive {
			continue
		}
		cx, cy := components.Object.Get(entry).Center()
		if math.Hypot(cx-x, cy-y) <= nc.Radius+nc.BossRadiusBonus {
			components.Health.Get(entry).Damage(nc.BossDamage)
			components.Boss.Get(entry).HitFlash = 6
			checkBossDefeated(e, entry)
		}
	}

	factory.CreateExplosion(e, x, y)
	ShakeScreen(e, cfg.ScreenShake.ExplosionIntensity, cfg.ScreenShake.ExplosionDuration)
	FlashScreen(e, cfg.Orange)
	PlaySFX(e, cfg.SoundExplosion)
	log.Debug("Napalm exploded", "x", x, "zombies", killed)
}
