package systems

import (
	"testing"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletKillsZombie(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	placeZombie(t, e, 0, 100, 100)
	require.NotNil(t, factory.CreatePlayerBullet(e, 110, 120))

	UpdateCombat(e)

	assert.Equal(t, 0, zombieCount(e))
	assert.Equal(t, 0, bulletCount(e))
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 1, s.Kills)
	assert.Equal(t, cfg.Tank.StartAmmo+cfg.Drops.KillBonusAmmo, s.Ammo)
	assert.Equal(t, cfg.Roster[0].TriggerKills-1, s.BossTrigger)
}

func TestZombieRemovedOnceWhenHitTwice(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	placeZombie(t, e, 0, 100, 100)
	require.NotNil(t, factory.CreatePlayerBullet(e, 105, 110))
	require.NotNil(t, factory.CreatePlayerBullet(e, 115, 130))

	UpdateCombat(e)

	assert.Equal(t, 0, zombieCount(e))
	assert.Equal(t, 1, s.Kills)
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 1, bulletCount(e), "the second bullet flies on")
}

func TestToughZombieTakesSeveralHits(t *testing.T) {
	e := newTestECS(t)
	z := placeZombie(t, e, 2, 300, 100)

	for i := 0; i < 2; i++ {
		require.NotNil(t, factory.CreatePlayerBullet(e, 310, 120))
		UpdateCombat(e)
	}
	assert.Equal(t, 1, components.Health.Get(z).Current)
	assert.Equal(t, 1, zombieCount(e))

	require.NotNil(t, factory.CreatePlayerBullet(e, 310, 120))
	UpdateCombat(e)
	assert.Equal(t, 0, zombieCount(e))
	assert.Equal(t, 20, getSession(e).Score)
}

func TestZombieContactDamagesTank(t *testing.T) {
	e := newTestECS(t)
	_, tankObj, _ := getTank(e)
	placeZombie(t, e, 0, tankObj.X, tankObj.Y-10)

	UpdateCombat(e)

	assert.Equal(t, 90, getSession(e).Health)
	assert.Equal(t, 0, zombieCount(e))
	assert.Equal(t, 0, getSession(e).Kills, "contact is not a kill")
}

func TestShieldBlocksContact(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.ShieldUntil = s.Now + 3*time.Second
	_, tankObj, _ := getTank(e)
	placeZombie(t, e, 0, tankObj.X, tankObj.Y-10)

	UpdateCombat(e)

	assert.Equal(t, 100, s.Health)
	assert.Equal(t, 0, zombieCount(e))
}

func TestHostileBulletDamage(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	cx, cy := tankCenter(t, e)

	require.NotNil(t, factory.CreateEnemyBullet(e, cx-12, cy-12, 0, 4))
	UpdateCombat(e)
	assert.Equal(t, 100-cfg.Bullet.EnemyDamage, s.Health)

	require.NotNil(t, factory.CreateBossProjectile(e, cx, cy, cx, cy+10, ""))
	UpdateCombat(e)
	assert.Equal(t, 100-cfg.Bullet.EnemyDamage-cfg.Boss.ProjectileDamage, s.Health)
	assert.Equal(t, 0, count(e, components.Bullet))
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	e := newTestECS(t)
	placeZombie(t, e, 0, 100, 100)
	// Zombie spans x [100, 148); a bullet starting at 148 only touches it.
	require.NotNil(t, factory.CreatePlayerBullet(e, 148, 110))

	UpdateCombat(e)

	assert.Equal(t, 1, zombieCount(e))
	assert.Equal(t, 1, bulletCount(e))
}

func TestCollectPickups(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Health = 60
	s.Ammo = 140
	cx, cy := tankCenter(t, e)

	require.NotNil(t, factory.CreatePickup(e, components.PickupAmmo, cx-10, cy-10, 0))
	require.NotNil(t, factory.CreatePickup(e, components.PickupMedkit, cx-10, cy-10, 0))
	UpdateCombat(e)

	assert.Equal(t, cfg.Tank.AmmoCap, s.Ammo)
	assert.Equal(t, 85, s.Health)
	assert.Equal(t, 0, count(e, components.Pickup))
}

func TestRollDropsAlwaysGrantsAmmo(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	for i := 0; i < 200; i++ {
		RollDrops(e, 400, 200)
	}
	assert.Equal(t, cfg.Tank.AmmoCap, s.Ammo)

	crates, medkits := 0, 0
	for _, p := range entries(e, components.Pickup) {
		switch components.Pickup.Get(p).Kind {
		case components.PickupAmmo:
			crates++
		case components.PickupMedkit:
			medkits++
		}
	}
	assert.Greater(t, crates, medkits)
	assert.Greater(t, medkits, 0)
}
