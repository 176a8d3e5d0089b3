package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, WaveSize(1, rng), cfg.Round.MinWave)

		n := WaveSize(5, rng)
		assert.GreaterOrEqual(t, n, 15)
		assert.Less(t, n, 25)
	}
	assert.Equal(t, cfg.Round.MinWave, WaveSize(0, rng))
}

func TestSpawnInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		d := SpawnInterval(1, rng)
		assert.GreaterOrEqual(t, d, 790*time.Millisecond)
		assert.Less(t, d, 1040*time.Millisecond)

		late := SpawnInterval(80, rng)
		assert.GreaterOrEqual(t, late, cfg.Round.MinInterval)
		assert.Less(t, late, cfg.Round.MinInterval+cfg.Round.IntervalJitter)
	}
}

func TestTierWeightsFavourHardTiersLater(t *testing.T) {
	first := TierWeights(1)
	late := TierWeights(10)
	require.Len(t, first, len(cfg.Zombies.Tiers))

	assert.Greater(t, first[0], first[3])
	assert.Greater(t, late[3], late[0])
	for i := range first {
		assert.GreaterOrEqual(t, late[i], first[i])
	}

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		tier := PickTier(1, rng)
		assert.True(t, tier >= 0 && tier < len(cfg.Zombies.Tiers))
	}
}

func TestStartRoundQueuesWithoutSpawning(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Now = time.Second

	n := StartRound(e, 1)
	r := getRound(e)
	require.Len(t, r.Queue, n)
	assert.Equal(t, 0, zombieCount(e))
	assert.Equal(t, s.Now, r.Queue[0].At)
	for i := 1; i < n; i++ {
		assert.Greater(t, r.Queue[i].At, r.Queue[i-1].At)
	}

	UpdateSpawner(e)
	assert.Equal(t, 1, zombieCount(e))
	assert.Len(t, r.Queue, n-1)

	for len(r.Queue) > 0 {
		tick(e, UpdateSpawner)
	}
	assert.Equal(t, n, zombieCount(e))
}

func TestSpawnedZombieGeometry(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	for i := 0; i < 50; i++ {
		z := SpawnZombie(e, 1)
		require.NotNil(t, z)
		obj := components.Object.Get(z)
		data := components.Zombie.Get(z)
		tier := cfg.Zombies.Tiers[data.Tier]

		assert.Equal(t, -tier.Height, obj.Y)
		assert.GreaterOrEqual(t, obj.X, 0.0)
		assert.LessOrEqual(t, obj.X+obj.W, s.Width)
		assert.InDelta(t, 0, data.VX, cfg.Zombies.DriftX)
		assert.GreaterOrEqual(t, data.FireCooldown, 2*tier.FireRate)
	}
}

func TestInactiveSessionDropsSchedule(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	StartRound(e, 3)

	s.Active = false
	UpdateSpawner(e)
	assert.Empty(t, getRound(e).Queue)

	s.Now += time.Minute
	s.Active = true
	UpdateSpawner(e)
	assert.Equal(t, 0, zombieCount(e))
}

func TestBossPhaseDropsSchedule(t *testing.T) {
	e := newTestECS(t)
	StartRound(e, 2)
	setPhase(e, cfg.PhaseBossActive)

	UpdateSpawner(e)

	assert.Empty(t, getRound(e).Queue)
	assert.Equal(t, 0, zombieCount(e))
}
