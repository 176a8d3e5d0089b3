package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTank moves the tank from the movement keys or toward the pointer and
// handles the fire and napalm actions.
func UpdateTank(e *ecs.ECS) {
	entry, obj, ok := getTank(e)
	if !ok {
		return
	}
	s := getSession(e)
	input := getOrCreateInput(e)
	tank := components.Tank.Get(entry)

	dx, dy := 0.0, 0.0
	if input.Current[cfg.ActionMoveLeft] {
		dx -= cfg.Tank.Speed
	}
	if input.Current[cfg.ActionMoveRight] {
		dx += cfg.Tank.Speed
	}
	if input.Current[cfg.ActionMoveUp] {
		dy -= cfg.Tank.Speed
	}
	if input.Current[cfg.ActionMoveDown] {
		dy += cfg.Tank.Speed
	}

	if dx != 0 || dy != 0 {
		input.PointerActive = false
	} else if input.PointerActive {
		cx, cy := obj.Center()
		dx = (input.PointerX - cx) * cfg.Tank.PointerFollow
		dy = (input.PointerY - cy) * cfg.Tank.PointerFollow
	}

	obj.X = clampFloat(obj.X+dx, 0, s.Width-obj.W)
	obj.Y = clampFloat(obj.Y+dy, s.Height/2, s.FieldBottom()-obj.H)
	obj.Update()

	if tank.MuzzleFlash > 0 {
		tank.MuzzleFlash--
	}

	if GetAction(input, cfg.ActionFire).JustPressed {
		FirePlayerBullet(e)
	}
	if GetAction(input, cfg.ActionNapalm).JustPressed {
		TriggerNapalm(e)
	}
}

// FirePlayerBullet spends one round and launches a bullet from the tank's
// top edge. With no ammo it does nothing.
func FirePlayerBullet(e *ecs.ECS) bool {
	s := getSession(e)
	if !s.Active || Phase(e).Frozen() || s.Ammo <= 0 {
		return false
	}
	entry, obj, ok := getTank(e)
	if !ok {
		return false
	}

	cx, _ := obj.Center()
	if factory.CreatePlayerBullet(e, cx-cfg.Bullet.SpawnOffsetX, obj.Y) == nil {
		return false
	}
	AddAmmo(s, -1)

	tank := components.Tank.Get(entry)
	tank.MuzzleFlash = 4
	tank.ShotsFired++
	PlaySFX(e, cfg.SoundShot)
	return true
}
