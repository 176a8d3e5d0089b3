package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/junglesiege/assets"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

var pickupSprites = map[components.PickupKind]string{
	components.PickupAmmo:      "ammo_drop.png",
	components.PickupMedkit:    "medkit.png",
	components.PickupAmmoBay:   "ammo_bay.png",
	components.PickupParachute: "parachute.png",
}

// DrawField renders the playfield: backdrop, entities and the damage flash.
// Any sprite that is not available is drawn as a flat placeholder shape.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	if s == nil {
		return
	}
	ox, oy := ShakeOffset(ecs)

	drawBackdrop(ecs, screen, s)

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pickup.Get(e)
		drawEntity(screen, e, pickupSprites[p.Kind], pickupColor(p.Kind), ox, oy)
	})
	components.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		tier := cfg.Zombies.Tiers[components.Zombie.Get(e).Tier]
		drawEntity(screen, e, tier.Sprite, tier.Color, ox, oy)
	})
	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		drawBoss(screen, e, ox, oy)
	})
	if tank, obj, ok := getTank(ecs); ok {
		drawEntity(screen, tank, cfg.Tank.Sprite, cfg.Tank.Color, ox, oy)
		if s.ShieldActive() {
			cx, cy := obj.Center()
			vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), float32(obj.W*0.75), 3, cfg.HUD.ShieldColor, true)
		}
	}
	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		drawBullet(screen, e, ox, oy)
	})
	components.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		drawEntity(screen, e, "napalm.png", cfg.Orange, ox, oy)
	})
	drawBomber(ecs, screen, ox, oy)
	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		drawExplosion(screen, e, ox, oy)
	})

	drawFlash(ecs, screen)
}

func drawBackdrop(ecs *ecs.ECS, screen *ebiten.Image, s *components.SessionData) {
	name := "background.png"
	switch Phase(ecs) {
	case cfg.PhaseBossAnnounced, cfg.PhaseBossActive:
		if !s.RosterExhausted() && s.Roster[s.BossIndex].Backdrop != "" {
			name = s.Roster[s.BossIndex].Backdrop
		}
	}

	img := assets.GetImage(name)
	if img == nil {
		screen.Fill(cfg.JungleGreen)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	b := img.Bounds()
	drawOp.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
	screen.DrawImage(img, drawOp)
}

// drawEntity stretches the sprite over the entity's box, or fills the box.
func drawEntity(screen *ebiten.Image, e *donburi.Entry, sprite string, fallback color.RGBA, ox, oy float64) {
	o := components.Object.Get(e)
	drawBox(screen, sprite, fallback, o.X+ox, o.Y+oy, o.W, o.H)
}

func drawBox(screen *ebiten.Image, sprite string, fallback color.RGBA, x, y, w, h float64) {
	img := assets.GetImage(sprite)
	if img == nil {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

func drawBullet(screen *ebiten.Image, e *donburi.Entry, ox, oy float64) {
	b := components.Bullet.Get(e)
	o := components.Object.Get(e)

	sprite, clr := b.Sprite, cfg.Bullet.Color
	switch b.Kind {
	case components.BulletEnemy:
		clr = cfg.Bullet.EnemyColor
	case components.BulletBoss:
		clr = cfg.Boss.ProjectileColor
	}

	if img := assets.GetImage(sprite); img != nil {
		drawBox(screen, sprite, clr, o.X+ox, o.Y+oy, o.W, o.H)
		return
	}
	cx, cy := o.Center()
	vector.FillCircle(screen, float32(cx+ox), float32(cy+oy), float32(o.W/2), clr, true)
}

func drawBoss(screen *ebiten.Image, e *donburi.Entry, ox, oy float64) {
	b := components.Boss.Get(e)
	if !b.Alive {
		return
	}
	o := components.Object.Get(e)
	x, y := o.X+ox, o.Y+oy

	img := assets.GetImage(b.Def.Sprite)
	switch {
	case img == nil:
		clr := cfg.Boss.Color
		if b.HitFlash > 0 {
			clr = cfg.White
		}
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), clr, false)
	case b.HitFlash > 0 && assets.FlashShader != nil:
		bounds := img.Bounds()
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Scale(o.W/float64(bounds.Dx()), o.H/float64(bounds.Dy()))
		shaderOp.GeoM.Translate(x, y)
		shaderOp.Images[0] = img
		shaderOp.Uniforms = map[string]any{"Amount": float32(0.7)}
		screen.DrawRectShader(bounds.Dx(), bounds.Dy(), assets.FlashShader, shaderOp)
	default:
		drawBox(screen, b.Def.Sprite, cfg.Boss.Color, x, y, o.W, o.H)
	}
}

func drawBomber(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	entry, ok := components.Napalm.First(ecs.World)
	if !ok {
		return
	}
	n := components.Napalm.Get(entry)
	if !n.Flying {
		return
	}
	nc := cfg.Napalm
	drawBox(screen, "bomber.png", cfg.Grey, n.BomberX+ox, n.BomberY+oy, nc.BomberWidth, nc.BomberHeight)
}

func drawExplosion(screen *ebiten.Image, e *donburi.Entry, ox, oy float64) {
	anim := components.Explosion.Get(e).Anim
	o := components.Object.Get(e)
	frame := 0
	if anim != nil {
		frame = anim.Frame()
	}

	sprite := fmt.Sprintf("xp%d.png", frame+1)
	if assets.GetImage(sprite) != nil {
		drawBox(screen, sprite, cfg.Orange, o.X+ox, o.Y+oy, o.W, o.H)
		return
	}
	alpha := []uint8{230, 180, 100}[min(frame, 2)]
	cx, cy := o.Center()
	clr := premultiply(color.RGBA{R: 255, G: 140, A: alpha})
	vector.FillCircle(screen, float32(cx+ox), float32(cy+oy), float32(o.W/2), clr, true)
}

func drawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok || !entry.HasComponent(components.Flash) {
		return
	}
	f := components.Flash.Get(entry)
	if f.Duration <= 0 || f.Total <= 0 {
		return
	}
	clr := f.Color
	clr.A = uint8(90 * f.Duration / f.Total)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), premultiply(clr), false)
}

// premultiply scales the colour channels by alpha, as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func pickupColor(kind components.PickupKind) color.RGBA {
	switch kind {
	case components.PickupAmmo:
		return cfg.Drops.AmmoColor
	case components.PickupMedkit:
		return cfg.Drops.MedkitColor
	case components.PickupAmmoBay:
		return cfg.Combo.AmmoBayColor
	case components.PickupParachute:
		return cfg.Combo.ParachuteColor
	}
	return cfg.White
}
