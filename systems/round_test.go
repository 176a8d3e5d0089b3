package systems

import (
	"testing"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartGameSchedulesFirstRound(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Round = 0
	s.Active = false

	StartGame(e)

	assert.True(t, s.Active)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, cfg.PhaseSpawning, Phase(e))
	assert.GreaterOrEqual(t, len(getRound(e).Queue), cfg.Round.MinWave)
}

func TestWaveClearAdvancesRound(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	UpdateRound(e)
	require.Equal(t, cfg.PhaseWaveClear, Phase(e))

	for i := 0; i < 60 && Phase(e) == cfg.PhaseWaveClear; i++ {
		tick(e, UpdateRound)
	}
	assert.Equal(t, cfg.PhaseSpawning, Phase(e))
	assert.Equal(t, 2, s.Round)
	assert.NotEmpty(t, getRound(e).Queue)
	assert.GreaterOrEqual(t, s.Elapsed(0), cfg.Round.WaveClearDelay)
}

func TestWaveNotClearWhileZombiesRemain(t *testing.T) {
	e := newTestECS(t)
	placeZombie(t, e, 0, 100, 100)

	UpdateRound(e)

	assert.Equal(t, cfg.PhaseSpawning, Phase(e))
}

func TestVictoryAfterFinalRound(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Round = cfg.Round.MaxRounds

	UpdateRound(e)
	s.Now += cfg.Round.WaveClearDelay
	UpdateRound(e)

	assert.Equal(t, cfg.PhaseVictory, Phase(e))
	assert.False(t, s.Active)
	assert.True(t, IsFinished(e))
}

func TestDefeatWhenHealthRunsOut(t *testing.T) {
	e := newTestECS(t)
	getSession(e).Health = 0

	UpdateRound(e)

	assert.Equal(t, cfg.PhaseDefeat, Phase(e))
	assert.True(t, IsFinished(e))
}

func TestDefeatWaitsForBulletsInFlight(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Ammo = 0
	b := factory.CreatePlayerBullet(e, 100, 100)
	require.NotNil(t, b)
	placeZombie(t, e, 0, 600, 100)

	UpdateRound(e)
	assert.Equal(t, cfg.PhaseSpawning, Phase(e))

	destroy(e, b)
	UpdateRound(e)
	assert.Equal(t, cfg.PhaseDefeat, Phase(e))
}

func TestBossTriggerBeatsWaveClear(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.BossTrigger = 0
	StartRound(e, 1)

	UpdateRound(e)

	assert.Equal(t, cfg.PhaseBossAnnounced, Phase(e))
	assert.Empty(t, getRound(e).Queue)
	_, ok := components.Intro.First(e.World)
	assert.True(t, ok)
}

func TestKillsDuringBossFightDoNotCount(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	setPhase(e, cfg.PhaseBossActive)
	before := s.BossTrigger

	z := placeZombie(t, e, 0, 100, 100)
	killZombie(e, z)

	assert.Equal(t, before, s.BossTrigger)
	assert.Equal(t, 1, s.Kills)
}

func TestUpdateRoundIgnoresInactiveSession(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Active = false
	s.Health = 0

	UpdateRound(e)

	assert.Equal(t, cfg.PhaseSpawning, Phase(e))
}
