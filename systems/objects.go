package systems

import (
	"github.com/automoto/junglesiege/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// destroy removes an entry from the space and the world. Already removed
// entries are ignored.
func destroy(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil {
			if spaceEntry, ok := components.Space.First(e.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	e.World.Remove(entry.Entity())
}

// moveObject shifts an object and refreshes its broadphase cells.
func moveObject(obj *components.ObjectData, dx, dy float64) {
	obj.X += dx
	obj.Y += dy
	obj.Update()
}

// touching returns the live entries carrying tag whose boxes strictly
// overlap obj. The space only narrows candidates to shared cells.
func touching(obj *components.ObjectData, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, other := range check.ObjectsByTags(tag) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if obj.Overlaps(other) {
			out = append(out, entry)
		}
	}
	return out
}

// collect snapshots the entities with the given component so callers can
// remove entities while walking the list. Ids are recycled on create, so
// resolve each one with live before touching it.
func collect[T any](e *ecs.ECS, c *donburi.ComponentType[T]) []donburi.Entity {
	var out []donburi.Entity
	c.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}

// live returns the entry for a snapshotted entity, or false once it has
// been removed, even if its id now belongs to a newer entity.
func live(e *ecs.ECS, ent donburi.Entity) (*donburi.Entry, bool) {
	if !e.World.Valid(ent) {
		return nil, false
	}
	return e.World.Entry(ent), true
}

func count[T any](e *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}
