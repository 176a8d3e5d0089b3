package archetypes

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
		components.Round,
		components.Napalm,
	)
	Tank = newArchetype(
		tags.Tank,
		components.Tank,
		components.Object,
	)
	Zombie = newArchetype(
		tags.Zombie,
		components.Zombie,
		components.Object,
		components.Health,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Bullet,
		components.Object,
	)
	BossProjectile = newArchetype(
		tags.BossProjectile,
		components.Bullet,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Health,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Object,
	)
	Intro = newArchetype(
		components.Intro,
	)
	Caption = newArchetype(
		components.Caption,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
