package factory

import (
	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns roster entry index centred horizontally near the top.
func CreateBoss(ecs *ecs.ECS, index int, def cfg.BossDef) *donburi.Entry {
	s := session(ecs)
	x := s.Width/2 - def.Width/2
	y := cfg.Boss.SpawnY
	if !components.FiniteRect(x, y, def.Width, def.Height) {
		return nil
	}

	boss := archetypes.Boss.Spawn(ecs)
	attachObject(ecs, boss, resolv.NewObject(x, y, def.Width, def.Height, tags.ResolvBoss))

	components.Boss.SetValue(boss, components.BossData{
		Index:    index,
		Def:      def,
		Cooldown: cfg.Boss.InitialCooldown + int(s.Rand.Float64()*float64(cfg.Boss.InitialCooldownJitter)),
		Alive:    true,
	})
	components.Health.SetValue(boss, components.HealthData{Current: def.Health, Max: def.Health})
	return boss
}
