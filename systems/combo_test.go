package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComboWindow(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	assert.Equal(t, 1, RegisterKill(e))

	s.Now += 500 * time.Millisecond
	assert.Equal(t, 2, RegisterKill(e))
	assert.True(t, s.ShieldActive())
	assert.Equal(t, s.Now+cfg.Combo.ShieldDuration, s.ShieldUntil)

	// A gap of exactly the window restarts the streak.
	s.Now += cfg.Combo.Window
	assert.Equal(t, 1, RegisterKill(e))
}

func TestComboRewards(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	for i := 0; i < 3; i++ {
		RegisterKill(e)
		s.Now += 100 * time.Millisecond
	}
	bays := entries(e, components.Pickup)
	require.Len(t, bays, 1)
	bay := components.Pickup.Get(bays[0])
	assert.Equal(t, components.PickupAmmoBay, bay.Kind)
	assert.Greater(t, bay.Expires, time.Duration(0))

	obj := components.Object.Get(bays[0])
	assert.InDelta(t, s.FieldBottom()-cfg.Combo.AmmoBaySize-cfg.Combo.AmmoBayMargin, obj.Y, 1e-9)
	assert.GreaterOrEqual(t, obj.X, 24.0)
	assert.LessOrEqual(t, obj.X+obj.W, s.Width-24)

	RegisterKill(e)
	parachutes := 0
	for _, p := range entries(e, components.Pickup) {
		if components.Pickup.Get(p).Kind == components.PickupParachute {
			parachutes++
			assert.Less(t, components.Object.Get(p).Y, 0.0)
		}
	}
	assert.Equal(t, cfg.Combo.ParachuteCount, parachutes)

	assert.Equal(t, "DOUBLE KILL!", comboCaption(2))
	assert.Equal(t, "TRIPLE KILL!", comboCaption(3))
	assert.Equal(t, "5 KILL STREAK!", comboCaption(5))
}

func TestAmmoBayExpires(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	spawnAmmoBay(e)
	require.Equal(t, 1, count(e, components.Pickup))

	s.Now += cfg.Combo.AmmoBayTTL - cfg.Tick
	UpdatePickups(e)
	assert.Equal(t, 1, count(e, components.Pickup))

	s.Now += cfg.Tick
	UpdatePickups(e)
	assert.Equal(t, 0, count(e, components.Pickup))
}

func TestFallingPickupLeavesScreen(t *testing.T) {
	e := newTestECS(t)
	spawnParachutes(e)
	require.Equal(t, 2, count(e, components.Pickup))

	for i := 0; i < 1000 && count(e, components.Pickup) > 0; i++ {
		UpdatePickups(e)
	}
	assert.Equal(t, 0, count(e, components.Pickup))
}

func TestParachutesWithInvalidGeometryAreDiscarded(t *testing.T) {
	e := newTestECS(t)
	getSession(e).Width = math.NaN()

	assert.NotPanics(t, func() { spawnParachutes(e) })

	assert.Equal(t, 0, count(e, components.Pickup))
	assert.NotContains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundSupplyDrop)
}
