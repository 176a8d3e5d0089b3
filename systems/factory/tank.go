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

// CreateTank places the player tank centred just above the HUD bar.
func CreateTank(ecs *ecs.ECS) *donburi.Entry {
	s := session(ecs)
	tank := archetypes.Tank.Spawn(ecs)

	x := s.Width/2 - cfg.Tank.Width/2
	y := s.FieldBottom() - cfg.Tank.Height
	obj := resolv.NewObject(x, y, cfg.Tank.Width, cfg.Tank.Height, tags.ResolvTank)
	attachObject(ecs, tank, obj)
	components.Tank.SetValue(tank, components.TankData{})

	return tank
}
