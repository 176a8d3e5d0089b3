package systems

import (
	"testing"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirePlayerBullet(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	require.True(t, FirePlayerBullet(e))
	assert.Equal(t, cfg.Tank.StartAmmo-1, s.Ammo)
	require.Equal(t, 1, bulletCount(e))

	_, tankObj, _ := getTank(e)
	cx, _ := tankObj.Center()
	b := entries(e, components.Bullet)[0]
	obj := components.Object.Get(b)
	assert.Equal(t, cx-cfg.Bullet.SpawnOffsetX, obj.X)
	assert.Equal(t, tankObj.Y, obj.Y)
	assert.Equal(t, cfg.Bullet.SpeedY, components.Bullet.Get(b).VY)
}

func TestFireWithoutAmmo(t *testing.T) {
	e := newTestECS(t)
	getSession(e).Ammo = 0

	assert.False(t, FirePlayerBullet(e))
	assert.Equal(t, 0, bulletCount(e))
	assert.Equal(t, 0, getSession(e).Ammo)
}

func TestFireDuringIntroIgnored(t *testing.T) {
	e := newTestECS(t)
	AnnounceBoss(e)

	assert.False(t, FirePlayerBullet(e))
	assert.Equal(t, cfg.Tank.StartAmmo, getSession(e).Ammo)
}

func TestTankStaysInLowerHalf(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	_, obj, _ := getTank(e)
	input := getOrCreateInput(e)

	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveUp] = true
	for i := 0; i < 500; i++ {
		UpdateTank(e)
	}
	assert.Equal(t, 0.0, obj.X)
	assert.Equal(t, s.Height/2, obj.Y)

	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionMoveDown] = true
	for i := 0; i < 500; i++ {
		UpdateTank(e)
	}
	assert.Equal(t, s.Width-obj.W, obj.X)
	assert.Equal(t, s.FieldBottom()-obj.H, obj.Y)
}

func TestTankFollowsPointer(t *testing.T) {
	e := newTestECS(t)
	_, obj, _ := getTank(e)
	input := getOrCreateInput(e)
	input.PointerActive = true
	input.PointerX = 100
	input.PointerY = obj.Y + obj.H/2

	startX := obj.X
	UpdateTank(e)
	assert.Less(t, obj.X, startX)

	input.Current[cfg.ActionMoveRight] = true
	UpdateTank(e)
	assert.False(t, input.PointerActive, "keys take over from the pointer")
}

func TestFireActionOnlyOnPress(t *testing.T) {
	e := newTestECS(t)
	input := getOrCreateInput(e)

	input.Current[cfg.ActionFire] = true
	UpdateTank(e)
	input.Previous = input.Current
	UpdateTank(e)

	assert.Equal(t, 1, bulletCount(e))
}
