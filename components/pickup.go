package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PickupKind selects the effect applied on tank contact.
type PickupKind int

const (
	PickupAmmo PickupKind = iota
	PickupMedkit
	PickupAmmoBay
	PickupParachute
)

func (k PickupKind) String() string {
	switch k {
	case PickupAmmo:
		return "ammo"
	case PickupMedkit:
		return "medkit"
	case PickupAmmoBay:
		return "ammo_bay"
	case PickupParachute:
		return "parachute"
	}
	return "unknown"
}

// PickupData describes a collectible. Expires is zero for pickups without a
// time-to-live; VY is zero for static caches.
type PickupData struct {
	Kind    PickupKind
	VY      float64
	Amount  int
	Expires time.Duration
}

var Pickup = donburi.NewComponentType[PickupData]()
