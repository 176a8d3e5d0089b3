package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IntroData drives the boss announcement overlay. Typewriter tweens the
// number of visible characters of Line.
type IntroData struct {
	Name       string
	Line       string
	Backdrop   string
	Started    time.Duration
	Typed      int
	TypedAt    time.Duration
	TypingDone bool
	Typewriter *gween.Tween
}

// Visible returns the part of the line typed so far.
func (i *IntroData) Visible() string {
	r := []rune(i.Line)
	if i.Typed >= len(r) {
		return i.Line
	}
	return string(r[:i.Typed])
}

var Intro = donburi.NewComponentType[IntroData]()
