package components

import (
	"time"

	"github.com/automoto/junglesiege/assets/animations"
	"github.com/yohamta/donburi"
)

// NapalmData tracks the boss-hit streak that arms the air strike and the
// bomber while it is flying.
type NapalmData struct {
	Streak  int
	LastHit time.Duration
	Ready   bool

	Flying    bool
	BomberX   float64
	BomberY   float64
	NextDropX float64
	DropsLeft int
}

var Napalm = donburi.NewComponentType[NapalmData]()

type BombData struct {
	VY float64
}

var Bomb = donburi.NewComponentType[BombData]()

type ExplosionData struct {
	Anim *animations.Animation
}

var Explosion = donburi.NewComponentType[ExplosionData]()
