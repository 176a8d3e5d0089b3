package systems

import (
	"fmt"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// RegisterKill updates the kill streak and hands out its rewards. The streak
// restarts at 1 when the previous kill is older than the combo window.
func RegisterKill(e *ecs.ECS) int {
	s := getSession(e)
	c := &s.Combo

	if c.HasKill && s.Elapsed(c.LastKill) < cfg.Combo.Window {
		c.Count++
	} else {
		c.Count = 1
	}
	c.LastKill = s.Now
	c.HasKill = true

	if c.Count >= 2 {
		c.Frames = cfg.HUD.ComboFrames
		factory.CreateCaption(e, comboCaption(c.Count), cfg.HUD.ComboColor)
	}

	switch c.Count {
	case cfg.Combo.ShieldAt:
		s.ShieldUntil = s.Now + cfg.Combo.ShieldDuration
		factory.CreateCaption(e, fmt.Sprintf("SHIELD: %ds", int(cfg.Combo.ShieldDuration.Seconds())), cfg.HUD.ShieldColor)
		PlaySFX(e, cfg.SoundShieldUp)
	case cfg.Combo.AmmoBayAt:
		spawnAmmoBay(e)
	case cfg.Combo.ParachuteAt:
		spawnParachutes(e)
	}
	return c.Count
}

func comboCaption(n int) string {
	switch n {
	case 2:
		return "DOUBLE KILL!"
	case 3:
		return "TRIPLE KILL!"
	}
	return fmt.Sprintf("%d KILL STREAK!", n)
}

func spawnAmmoBay(e *ecs.ECS) {
	s := getSession(e)
	size := cfg.Combo.AmmoBaySize
	margin := 24.0
	span := s.Width - size - 2*margin
	if span < 0 {
		span = 0
	}
	x := margin + s.Rand.Float64()*span
	y := s.FieldBottom() - size - cfg.Combo.AmmoBayMargin
	if placePickup(e, components.PickupAmmoBay, x, y, 0) {
		PlaySFX(e, cfg.SoundSupplyDrop)
	}
}

func spawnParachutes(e *ecs.ECS) {
	s := getSession(e)
	cc := cfg.Combo
	dropped := 0
	for i := 0; i < cc.ParachuteCount; i++ {
		x := s.Rand.Float64() * (s.Width - cc.ParachuteSize)
		vy := cc.ParachuteSpeedMin + s.Rand.Float64()*cc.ParachuteSpeedRange
		if placePickup(e, components.PickupParachute, x, -cc.ParachuteSize, vy) {
			dropped++
		}
	}
	if dropped > 0 {
		PlaySFX(e, cfg.SoundSupplyDrop)
	}
}

// placePickup creates a pickup and reports whether it was placed. The
// factory rejects non-finite geometry.
func placePickup(e *ecs.ECS, kind components.PickupKind, x, y, vy float64) bool {
	if factory.CreatePickup(e, kind, x, y, vy) == nil {
		log.Warn("Discarded pickup with invalid geometry", "kind", kind, "x", x, "y", y)
		return false
	}
	return true
}

// RollDrops grants the kill ammo bonus and rolls the ammo crate and medkit
// drops independently at the kill position.
func RollDrops(e *ecs.ECS, cx, cy float64) {
	s := getSession(e)
	d := cfg.Drops
	AddAmmo(s, d.KillBonusAmmo)

	if s.Rand.Float64() < d.AmmoChance {
		placePickup(e, components.PickupAmmo, cx-d.Size/2, cy, d.AmmoFallSpeed)
	}
	if s.Rand.Float64() < d.MedkitChance {
		placePickup(e, components.PickupMedkit, cx-d.Size/2, cy, d.MedkitFallSpeed)
	}
}
