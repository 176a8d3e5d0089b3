package systems

import (
	"testing"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/automoto/junglesiege/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 1280.0
	testHeight = 720.0
)

// newTestECS builds an active session at round 1 with an empty spawn
// schedule and the tank in its start position.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(e, factory.SessionOptions{
		Seed:   1,
		Roster: cfg.Roster,
		Width:  testWidth,
		Height: testHeight,
	})
	s := getSession(e)
	s.Active = true
	s.Round = 1
	return e
}

// placeZombie spawns a zombie of the given tier with its top-left corner
// at x, y.
func placeZombie(t *testing.T, e *ecs.ECS, tier int, x, y float64) *donburi.Entry {
	t.Helper()
	z := factory.CreateZombie(e, tier, x, 1)
	require.NotNil(t, z)
	obj := components.Object.Get(z)
	obj.Y = y
	obj.Update()
	return z
}

func tankCenter(t *testing.T, e *ecs.ECS) (float64, float64) {
	t.Helper()
	_, obj, ok := getTank(e)
	require.True(t, ok)
	return obj.Center()
}

// entries lists the current entries carrying c. Only for inspection; the
// slice goes stale once anything is created or removed.
func entries[T any](e *ecs.ECS, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func zombieCount(e *ecs.ECS) int {
	return count(e, components.Zombie)
}

func bulletCount(e *ecs.ECS) int {
	return count(e, tags.Bullet)
}

// tick advances the clock and runs the given systems once.
func tick(e *ecs.ECS, systems ...ecs.System) {
	UpdateClock(e)
	for _, sys := range systems {
		sys(e)
	}
}
