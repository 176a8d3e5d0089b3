package systems

import (
	"fmt"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/automoto/junglesiege/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves this tick's overlaps in a fixed order. Each pass
// removes what it consumes, so later passes never see a dead entry twice.
func UpdateCombat(e *ecs.ECS) {
	// --------------------------------------------------------------------
	// 1. Tank collects pickups
	// --------------------------------------------------------------------
	resolveTankPickups(e)

	// --------------------------------------------------------------------
	// 2. Zombies ram the tank
	// --------------------------------------------------------------------
	resolveTankZombies(e)

	// --------------------------------------------------------------------
	// 3. Player bullets hit zombies
	// --------------------------------------------------------------------
	resolveBulletZombies(e)

	// --------------------------------------------------------------------
	// 4. Player bullets hit the boss
	// --------------------------------------------------------------------
	resolveBulletBoss(e)

	// --------------------------------------------------------------------
	// 5. Zombie and boss shots hit the tank
	// --------------------------------------------------------------------
	resolveHostileBullets(e)
}

func resolveTankPickups(e *ecs.ECS) {
	_, tankObj, ok := getTank(e)
	if !ok {
		return
	}
	for _, entry := range touching(tankObj, tags.ResolvPickup) {
		collectPickup(e, entry)
	}
}

func collectPickup(e *ecs.ECS, entry *donburi.Entry) {
	s := getSession(e)
	p := *components.Pickup.Get(entry)
	destroy(e, entry)

	switch p.Kind {
	case components.PickupAmmo:
		AddAmmo(s, p.Amount)
	case components.PickupMedkit, components.PickupParachute:
		Heal(s, p.Amount)
	case components.PickupAmmoBay:
		AddAmmo(s, p.Amount)
		factory.CreateCaption(e, fmt.Sprintf("AMMO +%d", p.Amount), cfg.Combo.AmmoBayColor)
	}
	log.Debug("Pickup collected", "kind", p.Kind, "amount", p.Amount, "health", s.Health, "ammo", s.Ammo)
	PlaySFX(e, cfg.SoundPickup)
}

func resolveTankZombies(e *ecs.ECS) {
	_, tankObj, ok := getTank(e)
	if !ok {
		return
	}
	for _, entry := range touching(tankObj, tags.ResolvZombie) {
		destroy(e, entry)
		DamageTank(e, cfg.Zombies.ContactDamage)
	}
}

func resolveBulletZombies(e *ecs.ECS) {
	for _, ent := range collect(e, tags.Bullet) {
		bullet, ok := live(e, ent)
		if !ok {
			continue
		}
		hits := touching(components.Object.Get(bullet), tags.ResolvZombie)
		if len(hits) == 0 {
			continue
		}
		// A bullet is spent on the first zombie it touches.
		destroy(e, bullet)
		hitZombie(e, hits[0])
	}
}

// hitZombie applies one bullet of damage and kills the zombie at zero.
func hitZombie(e *ecs.ECS, entry *donburi.Entry) {
	if components.Health.Get(entry).Damage(1) {
		killZombie(e, entry)
		return
	}
	PlaySFX(e, cfg.SoundZombieHit)
}

func killZombie(e *ecs.ECS, entry *donburi.Entry) {
	s := getSession(e)
	z := components.Zombie.Get(entry)
	tier := cfg.Zombies.Tiers[z.Tier]
	cx, cy := components.Object.Get(entry).Center()
	destroy(e, entry)

	AddScore(s, tier.Score)
	s.Kills++
	RollDrops(e, cx, cy)
	combo := RegisterKill(e)

	switch Phase(e) {
	case cfg.PhaseSpawning, cfg.PhaseWaveClear:
		if s.BossTrigger > 0 {
			s.BossTrigger--
		}
	}

	log.Debug("Zombie killed", "tier", tier.Name, "score", s.Score, "combo", combo, "bossTrigger", s.BossTrigger)
	PlaySFX(e, cfg.SoundExplosion)
}

func resolveBulletBoss(e *ecs.ECS) {
	for _, ent := range collect(e, components.Boss) {
		boss, ok := live(e, ent)
		if !ok {
			continue
		}
		b := components.Boss.Get(boss)
		if !b.Alive {
			continue
		}
		hp := components.Health.Get(boss)
		for _, bullet := range touching(components.Object.Get(boss), tags.ResolvBullet) {
			destroy(e, bullet)
			hp.Damage(1)
			b.HitFlash = 6
			registerBossHit(e)
			PlaySFX(e, cfg.SoundBossHit)
		}
		checkBossDefeated(e, boss)
	}
}

func resolveHostileBullets(e *ecs.ECS) {
	_, tankObj, ok := getTank(e)
	if !ok {
		return
	}
	for _, entry := range touching(tankObj, tags.ResolvEnemyBullet) {
		destroy(e, entry)
		DamageTank(e, cfg.Bullet.EnemyDamage)
	}
	for _, entry := range touching(tankObj, tags.ResolvBossProjectile) {
		destroy(e, entry)
		DamageTank(e, cfg.Boss.ProjectileDamage)
	}
}
