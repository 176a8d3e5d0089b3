package tags

import "github.com/yohamta/donburi"

var (
	Tank           = donburi.NewTag().SetName("Tank")
	Zombie         = donburi.NewTag().SetName("Zombie")
	Bullet         = donburi.NewTag().SetName("Bullet")
	EnemyBullet    = donburi.NewTag().SetName("EnemyBullet")
	BossProjectile = donburi.NewTag().SetName("BossProjectile")
	Pickup         = donburi.NewTag().SetName("Pickup")
	Boss           = donburi.NewTag().SetName("Boss")
	Bomb           = donburi.NewTag().SetName("Bomb")
	Explosion      = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for broadphase queries
const (
	ResolvTank           = "tank"
	ResolvZombie         = "zombie"
	ResolvBullet         = "bullet"
	ResolvEnemyBullet    = "enemybullet"
	ResolvBossProjectile = "bossprojectile"
	ResolvPickup         = "pickup"
	ResolvBoss           = "boss"
)
