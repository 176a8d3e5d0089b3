package factory

import (
	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject binds a collision box to its entry and registers it with the
// world's space, if there is one.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func session(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}
