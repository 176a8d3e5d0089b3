package systems

import (
	"testing"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/stretchr/testify/assert"
)

func TestSFXQueueDrains(t *testing.T) {
	e := newTestECS(t)
	PlaySFX(e, cfg.SoundExplosion)
	PlaySFX(e, cfg.SoundBossHit)
	assert.Equal(t, []cfg.SoundID{cfg.SoundExplosion, cfg.SoundBossHit}, GetOrCreateAudio(e).PendingSFX)

	DrainSFX(e)

	assert.Empty(t, GetOrCreateAudio(e).PendingSFX)
}

func TestFadeWithoutMusicIsIgnored(t *testing.T) {
	e := newTestECS(t)
	FadeOutMusic(e)
	assert.Zero(t, mix.fadeLeft)

	mix.updateFade()
	assert.Nil(t, mix.music)
}
