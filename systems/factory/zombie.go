package factory

import (
	"math"

	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateZombie spawns a zombie of the given tier just above the top edge.
// Wobble and the first fire cooldown are randomised so zombies never fire
// in lockstep. Returns nil if the tier or geometry is invalid.
func CreateZombie(ecs *ecs.ECS, tier int, x, speed float64) *donburi.Entry {
	if tier < 0 || tier >= len(cfg.Zombies.Tiers) {
		return nil
	}
	t := cfg.Zombies.Tiers[tier]
	y := -t.Height
	if !components.FiniteRect(x, y, t.Width, t.Height) || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil
	}

	s := session(ecs)
	rng := s.Rand
	zc := cfg.Zombies

	zombie := archetypes.Zombie.Spawn(ecs)
	attachObject(ecs, zombie, resolv.NewObject(x, y, t.Width, t.Height, tags.ResolvZombie))

	components.Zombie.SetValue(zombie, components.ZombieData{
		Tier:         tier,
		Speed:        speed * t.SpeedScale,
		VX:           rng.Float64()*2*zc.DriftX - zc.DriftX,
		WobbleAmp:    zc.WobbleAmpMin + rng.Float64()*zc.WobbleAmpRange,
		WobbleSpeed:  zc.WobbleSpeedMin + rng.Float64()*zc.WobbleSpeedRange,
		Phase:        rng.Float64() * 2 * math.Pi,
		FireRate:     int(float64(t.FireRate) * zc.FireRateScale),
		FireCooldown: int(rng.Float64()*float64(t.FireRate)) + 2*t.FireRate,
		BulletSpeed:  math.Max(cfg.Bullet.EnemyMinSpeed, t.BulletSpeed-1),
	})
	components.Health.SetValue(zombie, components.HealthData{Current: t.Health, Max: t.Health})

	return zombie
}
