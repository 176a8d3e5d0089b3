package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// AddAmmo adds n rounds, clamped to [0, AmmoCap].
func AddAmmo(s *components.SessionData, n int) {
	s.Ammo = clampInt(s.Ammo+n, 0, cfg.Tank.AmmoCap)
}

// Heal adds n health, clamped to [0, MaxHealth].
func Heal(s *components.SessionData, n int) {
	s.Health = clampInt(s.Health+n, 0, cfg.Tank.MaxHealth)
}

// AddScore never lowers the score.
func AddScore(s *components.SessionData, n int) {
	if n > 0 {
		s.Score += n
	}
}

// DamageTank applies damage unless the shield is up. It reports whether the
// hit was absorbed.
func DamageTank(e *ecs.ECS, amount int) bool {
	s := getSession(e)
	if s.ShieldActive() {
		PlaySFX(e, cfg.SoundShieldHit)
		factory.CreateCaption(e, "SHIELD BLOCK", cfg.HUD.ShieldColor)
		FlashScreen(e, cfg.HUD.ShieldColor)
		return true
	}
	s.Health = clampInt(s.Health-amount, 0, cfg.Tank.MaxHealth)
	PlaySFX(e, cfg.SoundHurt)
	ShakeScreen(e, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
	FlashScreen(e, cfg.LightRed)
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
