package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/automoto/junglesiege/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestIntroTypesThenStartsFight(t *testing.T) {
	e := newTestECS(t)
	AnnounceBoss(e)

	tick(e, UpdateRound)
	entry, ok := components.Intro.First(e.World)
	require.True(t, ok)
	assert.Equal(t, "", components.Intro.Get(entry).Visible(), "nothing typed before the pre-delay")

	for i := 0; i < 600 && Phase(e) == cfg.PhaseBossAnnounced; i++ {
		tick(e, UpdateRound)
	}

	assert.Equal(t, cfg.PhaseBossActive, Phase(e))
	assert.Equal(t, 1, count(e, components.Boss))
	assert.Equal(t, 0, count(e, components.Intro))
	assert.Less(t, getSession(e).Now, cfg.Boss.IntroTimeout)
}

func TestIntroTimeout(t *testing.T) {
	e := newTestECS(t)
	AnnounceBoss(e)
	entry, _ := components.Intro.First(e.World)
	components.Intro.Get(entry).Typewriter = nil

	s := getSession(e)
	s.Now += cfg.Boss.IntroTimeout - cfg.Tick
	UpdateRound(e)
	assert.Equal(t, cfg.PhaseBossAnnounced, Phase(e))

	s.Now += cfg.Tick
	UpdateRound(e)
	assert.Equal(t, cfg.PhaseBossActive, Phase(e))
}

func spawnBoss(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	AnnounceBoss(e)
	boss := StartBossFight(e)
	require.NotNil(t, boss)
	return boss
}

func TestBossStartPosition(t *testing.T) {
	e := newTestECS(t)
	boss := spawnBoss(t, e)
	obj := components.Object.Get(boss)
	def := cfg.Roster[0]

	assert.Equal(t, testWidth/2-def.Width/2, obj.X)
	assert.Equal(t, cfg.Boss.SpawnY, obj.Y)
	assert.Equal(t, def.Health, components.Health.Get(boss).Current)
}

func TestBossStaysOutOfTankLane(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	boss := spawnBoss(t, e)
	obj := components.Object.Get(boss)

	for i := 0; i < 1000; i++ {
		UpdateBoss(e)
		assert.GreaterOrEqual(t, obj.X, 0.0)
		assert.LessOrEqual(t, obj.X, s.Width-obj.W)
		assert.GreaterOrEqual(t, obj.Y, cfg.Boss.MinY)
		assert.LessOrEqual(t, obj.Y, bossMaxY(s, obj.H))
	}
	assert.Equal(t, s.FieldBottom()-obj.H-216, bossMaxY(s, obj.H))
}

func TestBossMaxYNeverBelowMinY(t *testing.T) {
	e := newTestECS(t)
	assert.Equal(t, cfg.Boss.MinY, bossMaxY(getSession(e), 1000))
}

func TestBossFiresAtTank(t *testing.T) {
	e := newTestECS(t)
	boss := spawnBoss(t, e)
	b := components.Boss.Get(boss)
	b.Cooldown = 1

	UpdateBoss(e)

	shots := entries(e, tags.BossProjectile)
	require.Len(t, shots, 1)
	shot := components.Bullet.Get(shots[0])
	assert.Greater(t, shot.VY, 0.0)
	assert.InDelta(t, cfg.Boss.ProjectileSpeed, math.Hypot(shot.VX, shot.VY), 1e-9)
	assert.GreaterOrEqual(t, b.Cooldown, cfg.Boss.Cooldown)
	assert.Less(t, b.Cooldown, cfg.Boss.Cooldown+cfg.Boss.CooldownJitter)
}

func TestBulletsDamageBoss(t *testing.T) {
	e := newTestECS(t)
	boss := spawnBoss(t, e)
	cx, cy := components.Object.Get(boss).Center()

	require.NotNil(t, factory.CreatePlayerBullet(e, cx, cy))
	UpdateCombat(e)

	assert.Equal(t, cfg.Roster[0].Health-1, components.Health.Get(boss).Current)
	assert.Equal(t, 6, components.Boss.Get(boss).HitFlash)
	assert.Equal(t, 1, getNapalm(e).Streak)
	assert.Equal(t, 0, bulletCount(e))
}

func TestBossDefeatWalksRoster(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	for i := range cfg.Roster {
		require.Equal(t, i, s.BossIndex)
		boss := spawnBoss(t, e)
		assert.Equal(t, cfg.Roster[i].Name, components.Boss.Get(boss).Def.Name)

		components.Health.Get(boss).Current = 1
		cx, cy := components.Object.Get(boss).Center()
		require.NotNil(t, factory.CreatePlayerBullet(e, cx, cy))
		UpdateCombat(e)

		assert.Equal(t, i+1, s.BossIndex)
		assert.Equal(t, 0, count(e, components.Boss))
		if i < len(cfg.Roster)-1 {
			assert.Equal(t, cfg.PhaseBossDefeated, Phase(e))
			assert.Equal(t, cfg.Roster[i+1].TriggerKills, s.BossTrigger)
			round := s.Round
			UpdateRound(e)
			assert.Equal(t, cfg.PhaseSpawning, Phase(e))
			assert.Equal(t, round+1, s.Round)
		}
	}

	assert.Equal(t, cfg.PhaseVictory, Phase(e))
	assert.True(t, s.RosterExhausted())

	// Nothing more to announce once the roster is done.
	s.Active = true
	s.BossTrigger = 0
	AnnounceBoss(e)
	assert.Equal(t, len(cfg.Roster), s.BossIndex)
	assert.Equal(t, 0, count(e, components.Intro))
}

func TestInvalidBossIsSkipped(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.Roster = []cfg.BossDef{{Name: "Broken", Width: 0, Height: 10, Health: 1, Speed: 1, TriggerKills: 1}}

	AnnounceBoss(e)
	assert.Nil(t, StartBossFight(e))

	assert.Equal(t, 1, s.BossIndex)
	assert.Equal(t, cfg.PhaseVictory, Phase(e))
	assert.Equal(t, 0, count(e, components.Boss))
}

func TestShieldResetsOnNextRound(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.ShieldUntil = s.Now + time.Hour

	AdvanceRound(e)

	assert.False(t, s.ShieldActive())
}
