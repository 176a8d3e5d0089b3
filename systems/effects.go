package systems

import (
	"image/color"
	"math"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes timed visual effects (shake, flash, captions,
// explosions and hit flashes).
func UpdateEffects(ecs *ecs.ECS) {
	updateScreenShake(ecs)
	updateFlash(ecs)
	updateCaption(ecs)
	updateExplosions(ecs)

	if s := GetSession(ecs); s != nil && s.Combo.Frames > 0 {
		s.Combo.Frames--
	}
	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		if b := components.Boss.Get(e); b.HitFlash > 0 {
			b.HitFlash--
		}
	})
}

// updateScreenShake advances the shake and removes it once it has decayed
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok || !entry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(entry)
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// ShakeOffset returns the current decaying screen offset.
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Session.First(ecs.World)
	if !ok || !entry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		return 0, 0
	}

	progress := math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// ShakeScreen starts a screen shake effect. A weaker shake never cuts a
// stronger one short.
func ShakeScreen(ecs *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}

	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(entry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// FlashScreen tints the field for a few frames.
func FlashScreen(ecs *ecs.ECS, clr color.RGBA) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{
		Duration: cfg.ScreenShake.FlashDuration,
		Total:    cfg.ScreenShake.FlashDuration,
		Color:    clr,
	})
}

func updateFlash(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateCaption(ecs *ecs.ECS) {
	entry, ok := components.Caption.First(ecs.World)
	if !ok {
		return
	}
	c := components.Caption.Get(entry)
	if c.Fade == nil {
		ecs.World.Remove(entry.Entity())
		return
	}
	alpha, finished := c.Fade.Update(float32(cfg.Tick.Seconds()))
	c.Alpha = alpha
	if finished {
		ecs.World.Remove(entry.Entity())
	}
}

// updateExplosions plays each explosion once and removes it afterwards
func updateExplosions(ecs *ecs.ECS) {
	for _, ent := range collect(ecs, components.Explosion) {
		entry, ok := live(ecs, ent)
		if !ok {
			continue
		}
		anim := components.Explosion.Get(entry).Anim
		if anim == nil {
			destroy(ecs, entry)
			continue
		}
		anim.Update()
		if anim.Looped {
			destroy(ecs, entry)
		}
	}
}
