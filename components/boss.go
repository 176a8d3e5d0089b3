package components

import (
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Index    int
	Def      cfg.BossDef
	Cooldown int // ticks until the next shot
	Alive    bool
	HitFlash int
}

var Boss = donburi.NewComponentType[BossData]()
