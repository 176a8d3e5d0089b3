package systems

import (
	"github.com/automoto/junglesiege/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups drops falling pickups and removes the ones that expired or
// fell past the bottom edge.
func UpdatePickups(e *ecs.ECS) {
	s := getSession(e)

	for _, ent := range collect(e, components.Pickup) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		p := components.Pickup.Get(entry)
		obj := components.Object.Get(entry)

		if p.VY != 0 {
			moveObject(obj, 0, p.VY)
		}
		if p.Expires > 0 && s.Now >= p.Expires {
			log.Debug("Pickup expired", "kind", p.Kind)
			destroy(e, entry)
			continue
		}
		if obj.Y > s.Height {
			destroy(e, entry)
		}
	}
}
