package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints the whole field for a few frames (hit flash, damage flash)
type FlashData struct {
	Duration int
	Total    int
	Color    color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

// CaptionData is a short centred message that fades out.
type CaptionData struct {
	Text  string
	Color color.RGBA
	Alpha float32
	Fade  *gween.Tween
}

var Caption = donburi.NewComponentType[CaptionData]()
