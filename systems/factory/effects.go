package factory

import (
	"image/color"

	"github.com/automoto/junglesiege/archetypes"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCaption shows a fading centred message, replacing any current one.
func CreateCaption(ecs *ecs.ECS, text string, clr color.RGBA) *donburi.Entry {
	entry, ok := components.Caption.First(ecs.World)
	if !ok {
		entry = archetypes.Caption.Spawn(ecs)
	}
	components.Caption.SetValue(entry, components.CaptionData{
		Text:  text,
		Color: clr,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(cfg.HUD.CaptionDuration.Seconds()), ease.InQuad),
	})
	return entry
}

// CreateIntro starts the announcement overlay for a boss. The typewriter
// tweens from zero to the full line length, one character per IntroCharDelay.
func CreateIntro(ecs *ecs.ECS, def cfg.BossDef) *donburi.Entry {
	entry, ok := components.Intro.First(ecs.World)
	if !ok {
		entry = archetypes.Intro.Spawn(ecs)
	}

	line := def.IntroLine()
	chars := float32(len([]rune(line)))
	duration := float32(cfg.Boss.IntroCharDelay.Seconds()) * chars

	components.Intro.SetValue(entry, components.IntroData{
		Name:       def.Name,
		Line:       line,
		Backdrop:   def.Backdrop,
		Started:    session(ecs).Now,
		Typewriter: gween.New(0, chars, duration, ease.Linear),
	})
	return entry
}
