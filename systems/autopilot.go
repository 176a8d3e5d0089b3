package systems

import (
	"math"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnableAutopilot hands the tank over to the bot. UpdateInput stops polling
// devices once the input method is InputAutopilot.
func EnableAutopilot(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.LastInputMethod = components.InputAutopilot
	input.PointerActive = false

	if _, ok := components.Autopilot.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Autopilot))
	}
}

// UpdateAutopilot generates input actions for the tank from what is on the
// field. Must run where UpdateInput would, before UpdateTank.
func UpdateAutopilot(e *ecs.ECS) {
	entry, ok := components.Autopilot.First(e.World)
	if !ok {
		return
	}
	bot := components.Autopilot.Get(entry)
	input := getOrCreateInput(e)

	// Clear previous inputs
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if bot.FireCooldown > 0 {
		bot.FireCooldown--
	}

	s := GetSession(e)
	_, tankObj, ok := getTank(e)
	if s == nil || !ok || !s.Active {
		return
	}
	tx, ty := tankObj.Center()

	// Stay in the lowest lane, where zombies take longest to reach.
	input.Current[cfg.ActionMoveDown] = true

	// PRIORITY 1: step out of the way of incoming shots
	if dx, threat := nearestThreat(e, tx, ty, tankObj.W); threat {
		bot.Dodging = true
		if dx >= 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		return
	}
	bot.Dodging = false

	// PRIORITY 2: line up under the most dangerous target
	bot.TargetX, bot.HasTarget = pickTarget(e, s, tx)
	if !bot.HasTarget {
		return
	}
	dx := bot.TargetX - tx
	switch {
	case dx < -cfg.Autopilot.AimTolerance:
		input.Current[cfg.ActionMoveLeft] = true
	case dx > cfg.Autopilot.AimTolerance:
		input.Current[cfg.ActionMoveRight] = true
	default:
		if bot.FireCooldown == 0 && s.Ammo > 0 {
			input.Current[cfg.ActionFire] = true
			bot.FireCooldown = cfg.Autopilot.FireCooldown
		}
	}

	if n := getNapalm(e); n.Ready && Phase(e) == cfg.PhaseBossActive {
		input.Current[cfg.ActionNapalm] = true
	}
}

// pickTarget prefers the boss, then the zombie closest to the tank lane,
// then a pickup when health or ammo runs low.
func pickTarget(e *ecs.ECS, s *components.SessionData, tx float64) (float64, bool) {
	if boss, ok := components.Boss.First(e.World); ok && components.Boss.Get(boss).Alive {
		x, _ := components.Object.Get(boss).Center()
		return x, true
	}

	if s.Health < cfg.Tank.MaxHealth/2 || s.Ammo < 10 {
		if x, ok := nearestX(e, components.Pickup.Each, tx); ok {
			return x, true
		}
	}

	best, found, lowest := 0.0, false, math.Inf(-1)
	components.Zombie.Each(e.World, func(z *donburi.Entry) {
		o := components.Object.Get(z)
		if o.Y+o.H < 0 {
			return
		}
		if o.Y > lowest {
			lowest = o.Y
			best, _ = o.Center()
			found = true
		}
	})
	return best, found
}

func nearestX(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry)), tx float64) (float64, bool) {
	best, found := 0.0, false
	each(e.World, func(entry *donburi.Entry) {
		x, _ := components.Object.Get(entry).Center()
		if !found || math.Abs(x-tx) < math.Abs(best-tx) {
			best, found = x, true
		}
	})
	return best, found
}

// nearestThreat finds a hostile shot falling toward the tank within
// DodgeDistance and returns its horizontal offset from the tank centre.
func nearestThreat(e *ecs.ECS, tx, ty, tankW float64) (float64, bool) {
	dx, found, closest := 0.0, false, cfg.Autopilot.DodgeDistance
	check := func(entry *donburi.Entry) {
		b := components.Bullet.Get(entry)
		bx, by := components.Object.Get(entry).Center()
		if b.VY <= 0 || by > ty {
			return
		}
		if math.Abs(bx-tx) > tankW/2 {
			return
		}
		if d := ty - by; d < closest {
			closest, dx, found = d, bx-tx, true
		}
	}
	tags.EnemyBullet.Each(e.World, check)
	tags.BossProjectile.Each(e.World, check)
	return dx, found
}
