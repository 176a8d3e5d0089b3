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

// CreatePlayerBullet fires straight up from the given position.
func CreatePlayerBullet(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return createProjectile(ecs, archetypes.Bullet, components.BulletData{
		Kind:   components.BulletPlayer,
		VY:     cfg.Bullet.SpeedY,
		Sprite: cfg.Bullet.Sprite,
	}, x, y, cfg.Bullet.Width, cfg.Bullet.Height, tags.ResolvBullet)
}

// CreateEnemyBullet spawns a zombie shot with its top-left corner at x, y.
func CreateEnemyBullet(ecs *ecs.ECS, x, y, vx, vy float64) *donburi.Entry {
	return createProjectile(ecs, archetypes.EnemyBullet, components.BulletData{
		Kind:   components.BulletEnemy,
		VX:     vx,
		VY:     vy,
		Sprite: cfg.Bullet.EnemySprite,
	}, x, y, cfg.Bullet.EnemyWidth, cfg.Bullet.EnemyHeight, tags.ResolvEnemyBullet)
}

// CreateBossProjectile spawns a boss shot centred on cx, cy aimed at tx, ty.
func CreateBossProjectile(ecs *ecs.ECS, cx, cy, tx, ty float64, sprite string) *donburi.Entry {
	dx, dy := tx-cx, ty-cy
	length := math.Hypot(dx, dy)
	if length > 0 {
		dx /= length
		dy /= length
	} else {
		dy = 1
	}

	size := cfg.Boss.ProjectileSize
	return createProjectile(ecs, archetypes.BossProjectile, components.BulletData{
		Kind:   components.BulletBoss,
		VX:     dx * cfg.Boss.ProjectileSpeed,
		VY:     dy * cfg.Boss.ProjectileSpeed,
		Sprite: sprite,
	}, cx-size/2, cy-size/2, size, size, tags.ResolvBossProjectile)
}

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func createProjectile(ecs *ecs.ECS, arch spawner, data components.BulletData, x, y, w, h float64, tag string) *donburi.Entry {
	if !components.FiniteRect(x, y, w, h) || !finite(data.VX) || !finite(data.VY) {
		return nil
	}

	b := arch.Spawn(ecs)
	attachObject(ecs, b, resolv.NewObject(x, y, w, h, tag))
	components.Bullet.SetValue(b, data)
	return b
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
