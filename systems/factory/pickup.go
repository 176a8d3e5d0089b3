package factory

import (
	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickup places a collectible with its top-left corner at x, y. Size,
// payload and lifetime come from the kind; vy overrides the fall speed for
// kinds whose speed is randomised by the caller.
func CreatePickup(ecs *ecs.ECS, kind components.PickupKind, x, y, vy float64) *donburi.Entry {
	size, amount := pickupStats(kind)
	if !components.FiniteRect(x, y, size, size) || !finite(vy) {
		return nil
	}

	data := components.PickupData{Kind: kind, VY: vy, Amount: amount}
	if kind == components.PickupAmmoBay {
		data.VY = 0
		data.Expires = session(ecs).Now + cfg.Combo.AmmoBayTTL
	}

	p := archetypes.Pickup.Spawn(ecs)
	attachObject(ecs, p, resolv.NewObject(x, y, size, size, tags.ResolvPickup))
	components.Pickup.SetValue(p, data)
	return p
}

func pickupStats(kind components.PickupKind) (size float64, amount int) {
	switch kind {
	case components.PickupAmmo:
		return cfg.Drops.Size, cfg.Drops.AmmoAmount
	case components.PickupMedkit:
		return cfg.Drops.Size, cfg.Drops.MedkitHeal
	case components.PickupAmmoBay:
		return cfg.Combo.AmmoBaySize, cfg.Combo.AmmoBayAmount
	case components.PickupParachute:
		return cfg.Combo.ParachuteSize, cfg.Combo.ParachuteHeal
	}
	return 0, 0
}
