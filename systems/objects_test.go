package systems

import (
	"testing"

	"github.com/automoto/junglesiege/components"
	"github.com/automoto/junglesiege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveRejectsRecycledIds(t *testing.T) {
	e := newTestECS(t)
	first := factory.CreateBomb(e, 100, 100)
	second := factory.CreateBomb(e, 200, 100)
	require.NotNil(t, first)
	require.NotNil(t, second)

	snapshot := collect(e, components.Bomb)
	require.Len(t, snapshot, 2)

	destroy(e, first)
	destroy(e, second)
	require.NotNil(t, factory.CreateExplosion(e, 0, 0))

	for _, ent := range snapshot {
		_, ok := live(e, ent)
		assert.False(t, ok)
	}
}
