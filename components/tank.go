package components

import "github.com/yohamta/donburi"

type TankData struct {
	MuzzleFlash int // ticks
	ShotsFired  int
}

var Tank = donburi.NewComponentType[TankData]()
