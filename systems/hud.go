package systems

import (
	"fmt"

	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 200
	hudBarHeight = 16
	hudMargin    = 12
)

// DrawHUD renders the bottom bar: health, ammo, score, round, boss
// countdown and napalm state, plus the boss health bar on top.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	if s == nil {
		return
	}
	top := float32(s.FieldBottom())
	width := float32(s.Width)

	vector.FillRect(screen, 0, top, width, float32(cfg.HUD.BarHeight), cfg.HUD.BarColor, false)

	// Health bar
	barY := top + hudMargin
	vector.FillRect(screen, hudMargin, barY, hudBarWidth, hudBarHeight, cfg.HUD.HealthBackColor, false)
	ratio := float32(s.Health) / float32(cfg.Tank.MaxHealth)
	healthColor := cfg.HUD.HealthColor
	if s.ShieldActive() {
		healthColor = cfg.HUD.ShieldColor
	}
	vector.FillRect(screen, hudMargin, barY, hudBarWidth*ratio, hudBarHeight, healthColor, false)

	body := fonts.Body.Get()
	textY := int(top) + hudMargin + hudBarHeight + 22
	text.Draw(screen, fmt.Sprintf("HP %d", s.Health), body, hudMargin, textY, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("AMMO %d", s.Ammo), body, hudMargin+110, textY, cfg.HUD.TextColor)

	status := fmt.Sprintf("SCORE %d   ROUND %d/%d", s.Score, s.Round, cfg.Round.MaxRounds)
	if !s.RosterExhausted() && Phase(ecs) != cfg.PhaseBossActive {
		status += fmt.Sprintf("   BOSS IN %d", max(0, s.BossTrigger))
	}
	text.Draw(screen, status, body, centeredX(body, status, float64(width)), int(top)+hudMargin+20, cfg.HUD.TextColor)

	if n, ok := components.Napalm.First(ecs.World); ok && components.Napalm.Get(n).Ready {
		label := "NAPALM READY [N]"
		bold := fonts.Bold.Get()
		x := int(width) - hudMargin - font.MeasureString(bold, label).Round()
		text.Draw(screen, label, bold, x, int(top)+hudMargin+22, cfg.BrightYellow)
	}

	if s.Combo.Frames > 0 && s.Combo.Count >= 2 {
		label := fmt.Sprintf("COMBO x%d", s.Combo.Count)
		bold := fonts.Bold.Get()
		x := int(width) - hudMargin - font.MeasureString(bold, label).Round()
		text.Draw(screen, label, bold, x, textY, cfg.HUD.ComboColor)
	}

	drawBossBar(ecs, screen, width)
}

func drawBossBar(ecs *ecs.ECS, screen *ebiten.Image, width float32) {
	entry, ok := components.Boss.First(ecs.World)
	if !ok {
		return
	}
	b := components.Boss.Get(entry)
	hp := components.Health.Get(entry)
	if !b.Alive || hp.Max <= 0 {
		return
	}

	barW := width / 2
	x := (width - barW) / 2
	vector.FillRect(screen, x, hudMargin, barW, hudBarHeight, cfg.HUD.HealthBackColor, false)
	vector.FillRect(screen, x, hudMargin, barW*float32(hp.Current)/float32(hp.Max), hudBarHeight, cfg.HUD.BossBarColor, false)

	small := fonts.Small.Get()
	text.Draw(screen, b.Def.Name, small, int(x), hudMargin+hudBarHeight+16, cfg.HUD.TextColor)
}

// DrawIntro renders the boss announcement while it is showing.
func DrawIntro(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Intro.First(ecs.World)
	if !ok {
		return
	}
	intro := components.Intro.Get(entry)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, float32(h*0.3), float32(w), float32(h*0.3), cfg.HUD.IntroBackdrop, false)

	title := fonts.Title.Get()
	text.Draw(screen, intro.Name, title, centeredX(title, intro.Name, w), int(h*0.42), cfg.Red)

	line := intro.Visible()
	if line != "" {
		body := fonts.Bold.Get()
		quoted := fmt.Sprintf("%q", line)
		text.Draw(screen, quoted, body, centeredX(body, quoted, w), int(h*0.52), cfg.White)
	}
}

// DrawCaption renders the current fading caption in the middle of the field.
func DrawCaption(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Caption.First(ecs.World)
	if !ok {
		return
	}
	c := components.Caption.Get(entry)
	if c.Alpha <= 0 {
		return
	}

	clr := c.Color
	clr.A = uint8(255 * c.Alpha)
	bold := fonts.Bold.Get()
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	text.Draw(screen, c.Text, bold, centeredX(bold, c.Text, w), int(h*0.25), premultiply(clr))
}

// centeredX returns the dot x that centres s horizontally in width.
func centeredX(face font.Face, s string, width float64) int {
	return int(width/2) - font.MeasureString(face, s).Round()/2
}
