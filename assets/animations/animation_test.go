package animations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimedAnimationPlaysOnce(t *testing.T) {
	tick := time.Second / 60
	a := NewTimedAnimation(3, 80*time.Millisecond, tick)

	frames := map[int]bool{}
	ticks := 0
	for !a.Looped && ticks < 100 {
		frames[a.Frame()] = true
		a.Update()
		ticks++
	}

	assert.True(t, a.Looped)
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, frames)
	assert.Equal(t, 2, a.Frame(), "frozen on the last frame")
	// 3 frames of 80ms is roughly 14-15 ticks at 60 per second
	assert.InDelta(t, 15, ticks, 2)
}
