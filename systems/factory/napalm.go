package factory

import (
	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/assets/animations"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBomb drops a napalm bomb centred on cx with its top at y.
func CreateBomb(ecs *ecs.ECS, cx, y float64) *donburi.Entry {
	size := cfg.Napalm.BombSize
	if !components.FiniteRect(cx-size/2, y, size, size) {
		return nil
	}
	b := archetypes.Bomb.Spawn(ecs)
	// Bombs never collide, so they stay out of the space.
	obj := resolv.NewObject(cx-size/2, y, size, size)
	obj.Data = b
	components.Object.Set(b, &components.ObjectData{Object: obj})
	components.Bomb.SetValue(b, components.BombData{VY: cfg.Napalm.BombStartVY})
	return b
}

// CreateExplosion spawns the visual blast centred on cx, cy.
func CreateExplosion(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	size := cfg.Napalm.ExplosionSize
	if !components.FiniteRect(cx-size/2, cy-size/2, size, size) {
		return nil
	}
	e := archetypes.Explosion.Spawn(ecs)
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size)
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})
	components.Explosion.SetValue(e, components.ExplosionData{
		Anim: animations.NewTimedAnimation(cfg.Napalm.ExplosionFrames, cfg.Napalm.ExplosionFrameTime, cfg.Tick),
	})
	return e
}
