package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
)

func TestStatClamps(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)

	AddAmmo(s, 1000)
	assert.Equal(t, cfg.Tank.AmmoCap, s.Ammo)
	AddAmmo(s, -1000)
	assert.Equal(t, 0, s.Ammo)

	Heal(s, 50)
	assert.Equal(t, cfg.Tank.MaxHealth, s.Health)

	DamageTank(e, 250)
	assert.Equal(t, 0, s.Health)

	AddScore(s, 20)
	AddScore(s, -5)
	assert.Equal(t, 20, s.Score)
}

func TestShieldAbsorbsDamage(t *testing.T) {
	e := newTestECS(t)
	s := getSession(e)
	s.ShieldUntil = s.Now + time.Second

	assert.True(t, DamageTank(e, 16))
	assert.Equal(t, 100, s.Health)

	s.Now += time.Second
	assert.False(t, DamageTank(e, 16))
	assert.Equal(t, 84, s.Health)
}
