package systems

import (
	"math"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZombies advances every zombie down the field with its sideways
// wobble, removes the ones that walked off the bottom and lets the rest fire.
func UpdateZombies(e *ecs.ECS) {
	s := getSession(e)
	zc := cfg.Zombies

	for _, ent := range collect(e, components.Zombie) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		z := components.Zombie.Get(entry)
		obj := components.Object.Get(entry)

		z.Phase += z.WobbleSpeed
		moveObject(obj, z.VX+math.Sin(z.Phase)*z.WobbleAmp, z.Speed)

		if obj.X < 0 {
			obj.X = 0
			z.VX *= -zc.WallBounce
			obj.Update()
		}
		if maxX := s.Width - obj.W; obj.X > maxX {
			obj.X = maxX
			z.VX *= -zc.WallBounce
			obj.Update()
		}
		if obj.Y > s.Height {
			destroy(e, entry)
			continue
		}

		updateZombieFire(e, z, obj)
	}
}

func updateZombieFire(e *ecs.ECS, z *components.ZombieData, obj *components.ObjectData) {
	z.FireCooldown--
	if z.FireCooldown > 0 {
		return
	}

	s := getSession(e)
	zc := cfg.Zombies
	if s.Rand.Float64() < zc.SkipChance {
		z.FireCooldown = z.FireRate + s.Rand.Intn(zc.SkipRefireJitter)
		return
	}

	cx, cy := obj.Center()
	var vx, vy float64
	if _, tankObj, ok := getTank(e); ok && s.Rand.Float64() < zc.AimedChance {
		tx, ty := tankObj.Center()
		dx, dy := tx-cx, ty-cy
		dist := math.Max(1, math.Hypot(dx, dy))
		vx = dx / dist * z.BulletSpeed
		vy = dy / dist * z.BulletSpeed
	} else {
		vx = (s.Rand.Float64() - 0.5) * zc.SpreadX
		vy = z.BulletSpeed * (zc.SpreadYMin + s.Rand.Float64()*zc.SpreadYRange)
	}

	w, h := cfg.Bullet.EnemyWidth, cfg.Bullet.EnemyHeight
	if factory.CreateEnemyBullet(e, cx-w/2, cy-h/2, vx, vy) != nil {
		PlaySFX(e, cfg.SoundEnemyShot)
	}
	z.FireCooldown = z.FireRate + s.Rand.Intn(zc.FireRefireJitter)
}
