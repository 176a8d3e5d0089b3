package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every bullet and culls the ones that left the
// playfield. Player bullets go as soon as they are fully outside; zombie and
// boss shots get a margin so they visibly leave the screen.
func UpdateProjectiles(e *ecs.ECS) {
	s := getSession(e)

	for _, ent := range collect(e, components.Bullet) {
		entry, ok := live(e, ent)
		if !ok {
			continue
		}
		b := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)
		if !components.FiniteRect(obj.X+b.VX, obj.Y+b.VY, obj.W, obj.H) {
			destroy(e, entry)
			continue
		}
		moveObject(obj, b.VX, b.VY)

		margin := 0.0
		if b.Kind != components.BulletPlayer {
			margin = cfg.Bullet.EnemyCullMargin
		}
		if obj.X+obj.W < -margin || obj.X > s.Width+margin ||
			obj.Y+obj.H < -margin || obj.Y > s.Height+margin {
			destroy(e, entry)
		}
	}
}
