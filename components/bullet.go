package components

import "github.com/yohamta/donburi"

// BulletKind says who fired a projectile.
type BulletKind int

const (
	BulletPlayer BulletKind = iota
	BulletEnemy
	BulletBoss
)

type BulletData struct {
	Kind   BulletKind
	VX, VY float64
	Sprite string
}

var Bullet = donburi.NewComponentType[BulletData]()
