package headless

import (
	"context"
	"testing"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/automoto/junglesiege/systems"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(seed int64) factory.SessionOptions {
	return factory.SessionOptions{Seed: seed, Roster: cfg.Roster, Width: 1280, Height: 720}
}

func TestLoopIsDeterministic(t *testing.T) {
	a := NewGameLoop(testOptions(7), nil, 0).Run(context.Background(), 3000)
	b := NewGameLoop(testOptions(7), nil, 0).Run(context.Background(), 3000)

	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.Ticks, 3000)
}

func TestLoopStopsAtTickLimit(t *testing.T) {
	loop := NewGameLoop(testOptions(3), nil, 0)
	sum := loop.Run(context.Background(), 120)

	require.Equal(t, 120, sum.Ticks)
	assert.False(t, sum.Finished)
	assert.Equal(t, 1, systems.GetSession(loop.ECS()).Round)
}

func TestLoopHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum := NewGameLoop(testOptions(3), nil, 0).Run(ctx, 1000)
	assert.Equal(t, 0, sum.Ticks)

	sum = NewGameLoop(testOptions(3), nil, 1000).Run(ctx, 1000)
	assert.Equal(t, 0, sum.Ticks)
}

func TestLoopPlaysToAnOutcome(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}
	loop := NewGameLoop(testOptions(11), nil, 0)
	sum := loop.Run(context.Background(), 200000)

	require.True(t, sum.Finished)
	assert.True(t, sum.Phase == cfg.PhaseVictory || sum.Phase == cfg.PhaseDefeat)
	assert.Equal(t, sum.Phase, sum.Results.Outcome)
	assert.NotEmpty(t, sum.Results.Title)
	assert.Equal(t, sum.Results.Score, sum.Results.Best)
}
