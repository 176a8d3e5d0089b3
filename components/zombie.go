package components

import "github.com/yohamta/donburi"

// ZombieData holds per-zombie movement and firing state.
// Tier indexes config.Zombies.Tiers.
type ZombieData struct {
	Tier        int
	Speed       float64
	VX          float64
	WobbleAmp   float64
	WobbleSpeed float64
	Phase       float64

	FireRate     int
	FireCooldown int
	BulletSpeed  float64
}

var Zombie = donburi.NewComponentType[ZombieData]()
