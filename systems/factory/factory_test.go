package factory

import (
	"math"
	"testing"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreateWorld(e, SessionOptions{Seed: 42, Roster: cfg.Roster, Width: 800, Height: 600})
	return e
}

func TestCreateSession(t *testing.T) {
	e := newWorld(t)
	s := components.Session.Get(components.Session.MustFirst(e.World))

	assert.False(t, s.Active)
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, cfg.Tank.StartHealth, s.Health)
	assert.Equal(t, cfg.Tank.StartAmmo, s.Ammo)
	assert.Equal(t, cfg.Roster[0].TriggerKills, s.BossTrigger)
	assert.Equal(t, 600-cfg.HUD.BarHeight, s.FieldBottom())

	tank, ok := components.Tank.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(tank)
	assert.Equal(t, s.FieldBottom()-cfg.Tank.Height, obj.Y)
	assert.Equal(t, 400-cfg.Tank.Width/2, obj.X)
}

func TestSameSeedSameRandomness(t *testing.T) {
	a := newWorld(t)
	b := newWorld(t)
	ra := components.Session.Get(components.Session.MustFirst(a.World)).Rand
	rb := components.Session.Get(components.Session.MustFirst(b.World)).Rand
	for i := 0; i < 10; i++ {
		assert.Equal(t, ra.Float64(), rb.Float64())
	}
}

func TestFactoriesRejectInvalidGeometry(t *testing.T) {
	e := newWorld(t)
	baseline := e.World.Len()
	nan, inf := math.NaN(), math.Inf(1)

	assert.Nil(t, CreateZombie(e, 0, nan, 1))
	assert.Nil(t, CreateZombie(e, 0, 10, inf))
	assert.Nil(t, CreateZombie(e, -1, 10, 1))
	assert.Nil(t, CreateZombie(e, len(cfg.Zombies.Tiers), 10, 1))

	assert.Nil(t, CreatePlayerBullet(e, nan, 10))
	assert.Nil(t, CreateEnemyBullet(e, 10, 10, 0, nan))
	assert.Nil(t, CreateBossProjectile(e, inf, 10, 0, 0, ""))

	assert.Nil(t, CreatePickup(e, components.PickupAmmo, 10, nan, 1))
	assert.Nil(t, CreatePickup(e, components.PickupKind(99), 10, 10, 1))

	assert.Nil(t, CreateBoss(e, 0, cfg.BossDef{Name: "flat", Width: 0, Height: 10}))
	assert.Nil(t, CreateBomb(e, nan, 10))

	assert.Zero(t, e.World.Len()-baseline)
}

func TestCreatedObjectsJoinSpace(t *testing.T) {
	e := newWorld(t)
	z := CreateZombie(e, 1, 100, 1)
	require.NotNil(t, z)

	obj := components.Object.Get(z)
	assert.Equal(t, -cfg.Zombies.Tiers[1].Height, obj.Y)
	assert.NotNil(t, obj.Space)
	assert.Equal(t, z, obj.Data)
	assert.Equal(t, cfg.Zombies.Tiers[1].Health, components.Health.Get(z).Current)
}

func TestBossProjectileAimsAtTarget(t *testing.T) {
	e := newWorld(t)
	p := CreateBossProjectile(e, 100, 100, 100, 400, "skull.png")
	require.NotNil(t, p)

	b := components.Bullet.Get(p)
	assert.Equal(t, components.BulletBoss, b.Kind)
	assert.InDelta(t, 0, b.VX, 1e-9)
	assert.InDelta(t, cfg.Boss.ProjectileSpeed, b.VY, 1e-9)

	obj := components.Object.Get(p)
	cx, cy := obj.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 100.0, cy)

	// A shot with nowhere to aim falls straight down.
	p = CreateBossProjectile(e, 100, 100, 100, 100, "")
	require.NotNil(t, p)
	assert.InDelta(t, cfg.Boss.ProjectileSpeed, components.Bullet.Get(p).VY, 1e-9)
}

func TestAmmoBayHasLifetime(t *testing.T) {
	e := newWorld(t)
	p := CreatePickup(e, components.PickupAmmoBay, 50, 400, 5)
	require.NotNil(t, p)

	data := components.Pickup.Get(p)
	assert.Equal(t, 0.0, data.VY, "the ammo bay never falls")
	assert.Equal(t, cfg.Combo.AmmoBayTTL, data.Expires)
	assert.Equal(t, cfg.Combo.AmmoBayAmount, data.Amount)
	assert.Equal(t, cfg.Combo.AmmoBaySize, components.Object.Get(p).W)
}

func TestIntroTypewriter(t *testing.T) {
	e := newWorld(t)
	entry := CreateIntro(e, cfg.BossDef{Name: "Boss", Line: "hello"})
	intro := components.Intro.Get(entry)

	require.NotNil(t, intro.Typewriter)
	typed, done := intro.Typewriter.Update(float32(cfg.Boss.IntroCharDelay.Seconds()) * 2.5)
	assert.False(t, done)
	intro.Typed = int(typed)
	assert.Equal(t, "he", intro.Visible())
}
