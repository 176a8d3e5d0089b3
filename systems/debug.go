package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/fonts"
	"github.com/automoto/junglesiege/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hitboxColors = []struct {
	tag string
	clr color.RGBA
}{
	{tags.ResolvTank, color.RGBA{0, 0, 255, 255}},
	{tags.ResolvZombie, color.RGBA{255, 0, 0, 255}},
	{tags.ResolvBoss, color.RGBA{255, 0, 255, 255}},
	{tags.ResolvBullet, color.RGBA{0, 255, 0, 255}},
	{tags.ResolvPickup, color.RGBA{255, 255, 0, 255}},
}

// DrawDebug outlines every collision box and prints the round state.
// Only active with -hitboxes.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := color.RGBA{0, 255, 255, 255} // hostile shots
			for _, hc := range hitboxColors {
				if obj.HasTags(hc.tag) {
					c = hc.clr
					break
				}
			}
			x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	s := GetSession(ecs)
	if s == nil {
		return
	}
	r := getRound(ecs)
	info := fmt.Sprintf("phase %s  queue %d  objects %d  trigger %d  tps %.0f",
		r.Phase, len(r.Queue), ecs.World.Len(), s.BossTrigger, ebiten.ActualTPS())
	text.Draw(screen, info, fonts.Small.Get(), 8, 16, cfg.White)
}
